package scalar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scalargrad/scalar"
)

// requirePanicsWithErrorIs runs fn, requires that it panics with an error,
// and asserts that the recovered error wraps target.
func requirePanicsWithErrorIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.ErrorIs(t, err, target)
	}()
	fn()
}

// TestNew_Leaf verifies that a freshly constructed leaf carries the given
// value, a zero gradient, the leaf tag, and no operands.
func TestNew_Leaf(t *testing.T) {
	s := scalar.New(3.5)
	assert.Equal(t, 3.5, s.Value())
	assert.Equal(t, 0.0, s.Grad())
	assert.Equal(t, scalar.OpLeaf, s.OpKind())
	assert.Nil(t, s.Operands())
}

// TestConvert_Passthrough ensures an existing node is returned unchanged,
// not copied: operand references must stay shared.
func TestConvert_Passthrough(t *testing.T) {
	s := scalar.New(1)
	got, err := scalar.Convert(s)
	require.NoError(t, err)
	assert.Same(t, s, got)
}

// TestConvert_Numerics covers promotion of every accepted numeric kind to
// a constant leaf.
func TestConvert_Numerics(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"float64", float64(2.5), 2.5},
		{"float32", float32(0.5), 0.5},
		{"int", int(-3), -3},
		{"int8", int8(7), 7},
		{"int16", int16(-300), -300},
		{"int32", int32(1 << 20), 1 << 20},
		{"int64", int64(-42), -42},
		{"uint", uint(9), 9},
		{"uint8", uint8(255), 255},
		{"uint16", uint16(65535), 65535},
		{"uint32", uint32(12), 12},
		{"uint64", uint64(8), 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := scalar.Convert(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Value())
			assert.Equal(t, scalar.OpLeaf, got.OpKind())
		})
	}
}

// TestConvert_Unsupported ensures non-numeric inputs report
// ErrTypeConversion and that no node is produced.
func TestConvert_Unsupported(t *testing.T) {
	for _, in := range []any{"nope", []float64{1}, map[string]int{}, struct{}{}, nil} {
		got, err := scalar.Convert(in)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, scalar.ErrTypeConversion)
	}
}

// TestConvert_NilNode ensures a typed nil *Scalar reports ErrNilOperand.
func TestConvert_NilNode(t *testing.T) {
	var p *scalar.Scalar
	got, err := scalar.Convert(p)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, scalar.ErrNilOperand)
}

// TestOps_PanicOnBadOperand verifies that every operation propagates a
// conversion failure to its caller as a panic wrapping ErrTypeConversion,
// before any node construction happens.
func TestOps_PanicOnBadOperand(t *testing.T) {
	x := scalar.New(1)
	cases := []struct {
		name string
		fn   func()
	}{
		{"Add", func() { scalar.Add(x, "two") }},
		{"Sub", func() { scalar.Sub("two", x) }},
		{"Mul", func() { x.Mul(struct{}{}) }},
		{"Div", func() { x.Div([]int{1}) }},
		{"Pow", func() { x.Pow("e") }},
		{"Neg", func() { scalar.Neg("x") }},
		{"Tanh", func() { scalar.Tanh("x") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requirePanicsWithErrorIs(t, scalar.ErrTypeConversion, tc.fn)
		})
	}
}

// TestScalar_String checks the Scalar(value=…) rendering.
func TestScalar_String(t *testing.T) {
	assert.Equal(t, "Scalar(value=3)", scalar.New(3).String())
	assert.Equal(t, "Scalar(value=0.75)", scalar.New(0.75).String())
	assert.Equal(t, "Scalar(value=-2.5)", scalar.New(-2.5).String())
}

// TestOp_String checks the symbol rendering of operation tags.
func TestOp_String(t *testing.T) {
	assert.Equal(t, "leaf", scalar.OpLeaf.String())
	assert.Equal(t, "+", scalar.OpAdd.String())
	assert.Equal(t, "-", scalar.OpSub.String())
	assert.Equal(t, "*", scalar.OpMul.String())
	assert.Equal(t, "/", scalar.OpDiv.String())
	assert.Equal(t, "**", scalar.OpPow.String())
	assert.Equal(t, "unknown", scalar.Op(99).String())
}

// TestOperands_OrderAndSharing verifies that interior nodes expose their
// operands in operation order and that the references are shared, not cloned.
func TestOperands_OrderAndSharing(t *testing.T) {
	a := scalar.New(2)
	b := scalar.New(5)
	d := scalar.Sub(a, b)

	ops := d.Operands()
	require.Len(t, ops, 2)
	assert.Same(t, a, ops[0])
	assert.Same(t, b, ops[1])
	assert.Equal(t, scalar.OpSub, d.OpKind())
}
