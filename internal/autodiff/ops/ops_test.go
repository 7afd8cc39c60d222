package ops_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/ops"
)

// TestUnary_DerivativeMatchesFiniteDifference checks every rule's Deriv
// against a central finite difference at points inside its domain.
func TestUnary_DerivativeMatchesFiniteDifference(t *testing.T) {
	log2, err := ops.Log(2)
	require.NoError(t, err)
	exp3, err := ops.ExpBase(3)
	require.NoError(t, err)

	tests := []struct {
		op     ops.Unary
		points []float64
	}{
		{ops.Sin, []float64{-2, 0, 0.7, 3}},
		{ops.Cos, []float64{-2, 0, 0.7, 3}},
		{ops.Tan, []float64{-1, 0, 0.7, 1.2}},
		{ops.Arcsin, []float64{-0.9, 0, 0.5}},
		{ops.Arccos, []float64{-0.9, 0, 0.5}},
		{ops.Arctan, []float64{-5, 0, 0.5, 10}},
		{ops.Exp, []float64{-3, 0, 1, 2.5}},
		{ops.Ln, []float64{0.1, 1, 7}},
		{log2, []float64{0.1, 1, 7}},
		{exp3, []float64{-1, 0, 2}},
		{ops.Sinh, []float64{-2, 0, 1.5}},
		{ops.Cosh, []float64{-2, 0, 1.5}},
		{ops.Tanh, []float64{-2, 0, 1.5}},
		{ops.Sqrt, []float64{0.25, 1, 9}},
		{ops.Pow(3), []float64{-2, 0.5, 4}},
		{ops.Pow(-1.5), []float64{0.5, 4}},
		{ops.Reciprocal, []float64{-2, 0.5, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.op.Name, func(t *testing.T) {
			for _, x := range tt.points {
				y, dy, err := tt.op.Apply("x", x)
				require.NoError(t, err, "x = %g", x)
				assert.InDelta(t, tt.op.Eval(x), y, 0)

				want := fd.Derivative(tt.op.Eval, x, &fd.Settings{Formula: fd.Central})
				assert.InDelta(t, want, dy, 1e-5*math.Max(1, math.Abs(want)), "x = %g", x)
			}
		})
	}
}

func TestUnary_KnownValues(t *testing.T) {
	_, d, err := ops.Sin.Apply("", 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	_, d, err = ops.Ln.Apply("", 2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, d)

	_, d, err = ops.Pow(0).Apply("", 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d, "d(x^0)/dx = 0")

	y, d, err := ops.Sqrt.Apply("", 4)
	require.NoError(t, err)
	assert.Equal(t, 2.0, y)
	assert.Equal(t, 0.25, d)
}

func TestUnary_DomainErrors(t *testing.T) {
	tests := []struct {
		op   ops.Unary
		x    float64
		kind error
	}{
		{ops.Ln, 0, autodiff.ErrDomain},
		{ops.Ln, -1, autodiff.ErrDomain},
		{ops.Sqrt, -0.5, autodiff.ErrDomain},
		{ops.Arcsin, 1.5, autodiff.ErrDomain},
		{ops.Arccos, -1.01, autodiff.ErrDomain},
		{ops.Reciprocal, 0, autodiff.ErrDivisionByZero},
	}
	for _, tt := range tests {
		_, _, err := tt.op.Apply("x", tt.x)
		require.Error(t, err, "%s(%g)", tt.op.Name, tt.x)
		assert.ErrorIs(t, err, tt.kind)

		var e *autodiff.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, tt.op.Name, e.Op)
		assert.Equal(t, "x", e.Operand)
		assert.True(t, e.HasValue)
		assert.Equal(t, tt.x, e.Value)
	}
}

func TestLog_InvalidBase(t *testing.T) {
	for _, base := range []float64{0, -2, 1, math.Inf(1), math.NaN()} {
		_, err := ops.Log(base)
		assert.ErrorIs(t, err, autodiff.ErrInvalidArgument, "base %g", base)
	}
	ln, err := ops.Log(math.E)
	require.NoError(t, err)
	assert.Equal(t, "log", ln.Name)
}

func TestExpBase_InvalidBase(t *testing.T) {
	for _, base := range []float64{0, -2, math.Inf(1)} {
		_, err := ops.ExpBase(base)
		assert.ErrorIs(t, err, autodiff.ErrInvalidArgument, "base %g", base)
	}
}

func TestBinary_Partials(t *testing.T) {
	tests := []struct {
		op     ops.Binary
		a, b   float64
		value  float64
		da, db float64
	}{
		{ops.Add, 2, 5, 7, 1, 1},
		{ops.Sub, 2, 5, -3, 1, -1},
		{ops.Mul, 2, 5, 10, 5, 2},
		{ops.Div, 2, 5, 0.4, 0.2, -0.08},
	}
	for _, tt := range tests {
		t.Run(tt.op.Name, func(t *testing.T) {
			value, da, db, err := tt.op.Apply(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.value, value, 1e-15)
			assert.InDelta(t, tt.da, da, 1e-15)
			assert.InDelta(t, tt.db, db, 1e-15)
		})
	}
}

func TestDiv_ByZero(t *testing.T) {
	_, _, _, err := ops.Div.Apply(1, 0)
	assert.ErrorIs(t, err, autodiff.ErrDivisionByZero)
}

func TestRegistry(t *testing.T) {
	names := ops.Names()
	assert.Len(t, names, 12)
	assert.IsIncreasing(t, names)
	for _, name := range names {
		op, ok := ops.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, op.Name)
	}
	_, ok := ops.Lookup("logistic")
	assert.False(t, ok)
}

func TestLogistic(t *testing.T) {
	assert.Equal(t, 0.5, ops.Logistic(0))
	assert.InDelta(t, 1/(1+math.Exp(-2)), ops.Logistic(2), 1e-15)
}
