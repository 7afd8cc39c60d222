package optim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/optim"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// TestSGD_SimpleUpdate tests SGD without momentum.
func TestSGD_SimpleUpdate(t *testing.T) {
	params := optim.Params{"x": 2.0}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.0})

	require.NoError(t, optimizer.Step(params, map[string]float64{"x": 1.0}))

	// Expected: x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	if !floatEqual(params["x"], 1.9, 1e-12) {
		t.Errorf("SGD update: got %f, want %f", params["x"], 1.9)
	}
}

// TestSGD_WithMomentum tests SGD with momentum.
func TestSGD_WithMomentum(t *testing.T) {
	params := optim.Params{"x": 1.0}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// v_1 = 0.9 * 0 + 1.0 = 1.0
	// x_1 = 1.0 - 0.1 * 1.0 = 0.9
	require.NoError(t, optimizer.Step(params, map[string]float64{"x": 1.0}))
	assert.InDelta(t, 0.9, params["x"], 1e-12)
	assert.InDelta(t, 1.0, optimizer.Velocity("x"), 1e-12)

	// v_2 = 0.9 * 1.0 + 1.0 = 1.9
	// x_2 = 0.9 - 0.1 * 1.9 = 0.71
	require.NoError(t, optimizer.Step(params, map[string]float64{"x": 1.0}))
	assert.InDelta(t, 0.71, params["x"], 1e-12)
	assert.InDelta(t, 1.9, optimizer.Velocity("x"), 1e-12)
}

// TestSGD_MissingGradient leaves parameters that did not take part untouched.
func TestSGD_MissingGradient(t *testing.T) {
	params := optim.Params{"x": 1.0, "y": 5.0}
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.5})

	require.NoError(t, optimizer.Step(params, map[string]float64{"x": 2.0}))
	assert.InDelta(t, 0.0, params["x"], 1e-12)
	assert.Equal(t, 5.0, params["y"])
}

func TestSGD_UnknownGradient(t *testing.T) {
	params := optim.Params{"x": 1.0}
	err := optim.NewSGD(optim.SGDConfig{}).Step(params, map[string]float64{"z": 1})
	assert.ErrorIs(t, err, autodiff.ErrKeyNotFound)
	assert.Equal(t, 1.0, params["x"])
}

// TestSGD_GetSetLR tests learning rate getter/setter.
func TestSGD_GetSetLR(t *testing.T) {
	optimizer := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR(), "default LR")

	optimizer.SetLR(0.001)
	assert.Equal(t, 0.001, optimizer.GetLR())
}

// TestAdam_SimpleUpdate tests the first Adam step.
func TestAdam_SimpleUpdate(t *testing.T) {
	params := optim.Params{"x": 1.0}
	optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.1})

	require.NoError(t, optimizer.Step(params, map[string]float64{"x": 0.5}))

	// After bias correction m_hat = g and v_hat = g², so the first step
	// moves by lr * g / (|g| + eps) ≈ lr.
	assert.InDelta(t, 0.9, params["x"], 1e-6)
	assert.Equal(t, 1, optimizer.GetTimestep())
}

// TestAdam_BiasCorrection checks that the step size stays near lr for a
// constant gradient, independently of its magnitude.
func TestAdam_BiasCorrection(t *testing.T) {
	for _, g := range []float64{1e-3, 1, 1e3} {
		params := optim.Params{"x": 0}
		optimizer := optim.NewAdam(optim.AdamConfig{LR: 0.01})
		for k := 0; k < 5; k++ {
			require.NoError(t, optimizer.Step(params, map[string]float64{"x": g}))
		}
		assert.InDelta(t, -0.05, params["x"], 1e-5, "gradient %g", g)
	}
}

func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())
	optimizer.SetLR(0.5)
	assert.Equal(t, 0.5, optimizer.GetLR())
	assert.Equal(t, 0, optimizer.GetTimestep())
}

// TestConvergence_SimpleQuadratic tests optimizer convergence on f(x) = x².
//
// This is an integration test that verifies both SGD and Adam can minimize
// a simple quadratic function. The minimum is at x = 0.
func TestConvergence_SimpleQuadratic(t *testing.T) {
	tests := []struct {
		name      string
		optimizer optim.Optimizer
	}{
		{"SGD", optim.NewSGD(optim.SGDConfig{LR: 0.1, Momentum: 0.9})},
		{"Adam", optim.NewAdam(optim.AdamConfig{LR: 0.1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := optim.Params{"x": 3.0}
			// f(x) = x², df/dx = 2x
			for k := 0; k < 100; k++ {
				require.NoError(t, tt.optimizer.Step(params, map[string]float64{"x": 2 * params["x"]}))
			}
			if math.Abs(params["x"]) > 0.1 {
				t.Errorf("%s convergence: x = %f, expected close to 0", tt.name, params["x"])
			}
		})
	}
}

func TestParams_CloneAndNames(t *testing.T) {
	p := optim.Params{"b": 2, "a": 1}
	c := p.Clone()
	c["a"] = 10

	assert.Equal(t, 1.0, p["a"])
	assert.Equal(t, []string{"a", "b"}, p.Names())
}
