// Package scalar implements reverse-mode automatic differentiation over
// scalar values.
//
// Overview:
//
//   - Every arithmetic operation (Add, Sub, Mul, Div, Pow, Neg, Tanh)
//     produces a new *Scalar node and records the operand nodes that were
//     consumed to compute it, growing a directed acyclic computation graph
//     as expressions are evaluated.
//   - Calling Backward on a terminal node topologically orders the graph
//     reachable from it and applies the chain rule in reverse, accumulating
//     d(terminal)/d(node) into every node's gradient.
//   - Either side of any operation may be a *Scalar or a plain Go number
//     (int/uint/float variants); raw numbers are promoted to constant leaf
//     nodes automatically via Convert.
//
// Key properties:
//
//   - Gradients accumulate additively: a node feeding multiple downstream
//     consumers (or the same consumer through several paths) receives the
//     sum of all path contributions, never an overwrite.
//   - A node's value and operands are immutable after construction; only
//     the gradient mutates, and only during Backward or ZeroGrad.
//   - Each node's backward rule is a tagged operation kind dispatched in
//     the engine, not an opaque closure, so graphs stay introspectable
//     (see Op, Operands, Walk).
//   - The backward traversal uses an explicit stack, so arbitrarily deep
//     expression chains do not exhaust the goroutine call stack.
//
// Complexity:
//
//   - Graph construction: O(1) per operation (Tanh builds a constant
//     number of primitive nodes).
//   - Backward: O(V + E) time, O(V) memory, where V = reachable nodes and
//     E = operand edges (each node's rule fires exactly once).
//
// Errors:
//
//   - ErrTypeConversion — an operand is neither *Scalar nor a real number.
//     Operations panic with an error wrapping this sentinel; Convert
//     returns it instead for callers that prefer explicit checking.
//   - ErrNilOperand — a nil *Scalar was supplied where a node is required.
//
// Numeric domain errors (division by a zero-valued node, the logarithm
// taken on the exponent-gradient branch of Pow when the base is not
// positive) are not intercepted: they surface as ±Inf or NaN per Go
// floating-point semantics, exactly as the underlying math package
// produces them.
//
// Thread safety:
//
//   - Graph construction and Backward are single-threaded by design.
//     Independent graphs may be built in parallel as long as no node is
//     shared between them; sharing requires external synchronization.
//
// Example usage:
//
//	a := scalar.New(3.0)
//	b := scalar.New(4.0)
//	c := a.Div(b) // 0.75
//	c.Backward()
//	fmt.Println(a.Grad()) // 0.25
//	fmt.Println(b.Grad()) // -0.1875
package scalar
