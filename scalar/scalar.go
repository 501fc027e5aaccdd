package scalar

import "fmt"

// Scalar is a node of the computation graph: an immutable forward value,
// a mutable gradient accumulator, the tag of the operation that produced
// the node, and references to the operand nodes it consumed.
//
// A Scalar must only be created through New or through the arithmetic
// operations; the zero value is not meaningful.
type Scalar struct {
	val      float64    // forward-computed result, immutable after construction
	grad     float64    // accumulated d(terminal)/d(this), mutated by Backward
	op       Op         // operation that produced this node (OpLeaf for constants)
	operands [2]*Scalar // producing operands in operation order; both nil for leaves
}

// New constructs a leaf node holding value v with zero gradient.
func New(v float64) *Scalar {
	return &Scalar{val: v, op: OpLeaf}
}

// Convert normalizes v to a *Scalar at the operation boundary:
//
//   - a *Scalar passes through unchanged (operand references are shared,
//     never copied — a node may feed any number of downstream consumers);
//   - any Go integer or float becomes a fresh constant leaf node;
//   - anything else returns an error wrapping ErrTypeConversion.
func Convert(v any) (*Scalar, error) {
	switch x := v.(type) {
	case *Scalar:
		if x == nil {
			return nil, ErrNilOperand
		}
		return x, nil
	case float64:
		return New(x), nil
	case float32:
		return New(float64(x)), nil
	case int:
		return New(float64(x)), nil
	case int8:
		return New(float64(x)), nil
	case int16:
		return New(float64(x)), nil
	case int32:
		return New(float64(x)), nil
	case int64:
		return New(float64(x)), nil
	case uint:
		return New(float64(x)), nil
	case uint8:
		return New(float64(x)), nil
	case uint16:
		return New(float64(x)), nil
	case uint32:
		return New(float64(x)), nil
	case uint64:
		return New(float64(x)), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrTypeConversion, v)
	}
}

// mustConvert is the promotion step used by the arithmetic operations.
// A failed conversion panics with the wrapped sentinel so the construction
// of the offending node never happens.
func mustConvert(v any) *Scalar {
	s, err := Convert(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Value returns the forward-computed value of the node.
func (s *Scalar) Value() float64 { return s.val }

// Grad returns the gradient accumulated on the node so far. It is zero
// until a Backward pass has propagated through the node.
func (s *Scalar) Grad() float64 { return s.grad }

// OpKind returns the tag of the operation that produced the node.
func (s *Scalar) OpKind() Op { return s.op }

// Operands returns the operand nodes consumed to produce this node, in
// operation order. Leaf nodes return nil. The returned slice is a copy;
// the underlying references stay shared with the graph.
func (s *Scalar) Operands() []*Scalar {
	if s.op == OpLeaf {
		return nil
	}
	return []*Scalar{s.operands[0], s.operands[1]}
}

// String renders the node as Scalar(value=…).
func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(value=%g)", s.val)
}
