// Package scalar defines the node type, operation tags, sentinel errors,
// and backward-pass options for the reverse-mode autodiff engine.
package scalar

import "errors"

// Op tags the operation that produced a node. Leaf nodes carry OpLeaf;
// every other tag names the binary primitive whose backward rule the
// engine dispatches for that node.
type Op uint8

const (
	// OpLeaf marks a constant node with no operands; its backward rule is a no-op.
	OpLeaf Op = iota

	// OpAdd marks a node produced by addition (operands[0] + operands[1]).
	OpAdd

	// OpSub marks a node produced by subtraction (operands[0] - operands[1]).
	OpSub

	// OpMul marks a node produced by multiplication (operands[0] * operands[1]).
	OpMul

	// OpDiv marks a node produced by division (operands[0] / operands[1]).
	OpDiv

	// OpPow marks a node produced by exponentiation (operands[0] ** operands[1]).
	OpPow
)

// String returns the conventional symbol for the operation tag.
func (op Op) String() string {
	switch op {
	case OpLeaf:
		return "leaf"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "**"
	default:
		return "unknown"
	}
}

var (
	// ErrTypeConversion indicates that an operand supplied to an arithmetic
	// operation is neither a *Scalar nor convertible to a real number.
	ErrTypeConversion = errors.New("scalar: operand is neither *Scalar nor a real number")

	// ErrNilOperand indicates that a nil *Scalar was supplied where a node
	// is required.
	ErrNilOperand = errors.New("scalar: operand is a nil *Scalar")
)

// BackwardOption configures optional behavior of Backward.
type BackwardOption func(*backwardOptions)

// backwardOptions holds settings for a backward pass, currently only the
// gradient seed placed on the terminal node.
type backwardOptions struct {
	seed float64 // gradient assigned to the terminal node before propagation
}

// defaultBackwardOptions returns the default settings: seed = 1,
// the convention d(output)/d(output) = 1.
func defaultBackwardOptions() backwardOptions {
	return backwardOptions{seed: 1}
}

// WithSeed returns a BackwardOption that seeds the terminal node's gradient
// with the given value instead of 1. Useful for scaling a whole gradient or
// chaining into an externally computed upstream gradient.
func WithSeed(seed float64) BackwardOption {
	return func(o *backwardOptions) {
		o.seed = seed
	}
}
