package scalar

import "math"

// Tanh returns a node computing the hyperbolic tangent of v, built as
//
//	tanh(x) = (1 - e^(-2x)) / (1 + e^(-2x))
//
// where e^(-2x) is realized with Pow over the Euler constant and -2*x.
// The composite introduces a handful of intermediate nodes, and its
// gradient emerges from the primitive backward rules chained through them;
// there is no hand-derived tanh derivative to maintain.
//
// Saturation follows the closed form: large positive inputs approach value
// 1 with vanishing gradient, large negative inputs approach -1.
func Tanh(v any) *Scalar {
	x := mustConvert(v)

	// e^(-2x) as a Pow node so its gradient flows through the exponent side.
	exp := Pow(New(math.E), Mul(-2, x))

	return Div(Sub(1, exp), Add(1, exp))
}

// Tanh returns a node computing the hyperbolic tangent of s.
func (s *Scalar) Tanh() *Scalar { return Tanh(s) }
