// Arithmetic operation builders. Each builder promotes its inputs, computes
// the forward value, and records the operands under the operation tag whose
// backward rule the engine will dispatch during Backward.
//
// Operand order is fixed and significant for the asymmetric operations
// (Sub, Div, Pow): a reflected expression such as 2 - x is obtained by
// passing the number on the left — Sub(2, x) — which builds the operation
// with operands in the mathematically correct order rather than swapping
// the backward formula.
package scalar

import "math"

// newBinary constructs an interior node for op over operands a, b with the
// given forward value. Gradient starts at zero per the accumulation invariant.
func newBinary(op Op, a, b *Scalar, val float64) *Scalar {
	return &Scalar{val: val, op: op, operands: [2]*Scalar{a, b}}
}

// Add returns a node computing a + b.
// Either argument may be a *Scalar or a plain number; Add panics with an
// error wrapping ErrTypeConversion otherwise.
func Add(a, b any) *Scalar {
	sa, sb := mustConvert(a), mustConvert(b)
	return newBinary(OpAdd, sa, sb, sa.val+sb.val)
}

// Sub returns a node computing a - b.
// Either argument may be a *Scalar or a plain number; Sub panics with an
// error wrapping ErrTypeConversion otherwise.
func Sub(a, b any) *Scalar {
	sa, sb := mustConvert(a), mustConvert(b)
	return newBinary(OpSub, sa, sb, sa.val-sb.val)
}

// Mul returns a node computing a * b.
// Either argument may be a *Scalar or a plain number; Mul panics with an
// error wrapping ErrTypeConversion otherwise.
func Mul(a, b any) *Scalar {
	sa, sb := mustConvert(a), mustConvert(b)
	return newBinary(OpMul, sa, sb, sa.val*sb.val)
}

// Div returns a node computing a / b.
// Division by a zero-valued node is not intercepted: the forward value and
// the propagated gradients follow Go floating-point semantics (±Inf, NaN).
func Div(a, b any) *Scalar {
	sa, sb := mustConvert(a), mustConvert(b)
	return newBinary(OpDiv, sa, sb, sa.val/sb.val)
}

// Pow returns a node computing base ** exponent.
//
// The exponent-side backward rule multiplies by ln(base), so a gradient is
// only meaningful for base > 0. With a non-positive base that branch
// yields NaN or -Inf per math.Log, which then propagates through the
// exponent's ancestors; callers differentiating through the exponent must
// keep the base positive.
func Pow(base, exponent any) *Scalar {
	sb, se := mustConvert(base), mustConvert(exponent)
	return newBinary(OpPow, sb, se, math.Pow(sb.val, se.val))
}

// Neg returns a node computing -v, built as v * -1 so that negation reuses
// the multiplication backward rule.
func Neg(v any) *Scalar {
	return Mul(v, -1.0)
}

// Add returns a node computing s + other; other may be a *Scalar or a number.
func (s *Scalar) Add(other any) *Scalar { return Add(s, other) }

// Sub returns a node computing s - other; other may be a *Scalar or a number.
func (s *Scalar) Sub(other any) *Scalar { return Sub(s, other) }

// Mul returns a node computing s * other; other may be a *Scalar or a number.
func (s *Scalar) Mul(other any) *Scalar { return Mul(s, other) }

// Div returns a node computing s / other; other may be a *Scalar or a number.
func (s *Scalar) Div(other any) *Scalar { return Div(s, other) }

// Pow returns a node computing s ** exponent; exponent may be a *Scalar or
// a number. See Pow for the domain caveat on the exponent-side gradient.
func (s *Scalar) Pow(exponent any) *Scalar { return Pow(s, exponent) }

// Neg returns a node computing -s.
func (s *Scalar) Neg() *Scalar { return Neg(s) }
