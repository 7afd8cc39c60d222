package jacobian_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/forward"
	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
	"github.com/superautodiff/superautodiff/internal/autodiff/vector"
	"github.com/superautodiff/superautodiff/internal/jacobian"
	"github.com/superautodiff/superautodiff/internal/parallel"
)

// polar maps (r, θ) to (r·cos θ, r·sin θ).
func polar(t *testing.T, r, theta float64) []*forward.Dual {
	t.Helper()
	rd, err := forward.New("r", r)
	require.NoError(t, err)
	td, err := forward.New("theta", theta)
	require.NoError(t, err)

	c, err := forward.Cos(td)
	require.NoError(t, err)
	s, err := forward.Sin(td)
	require.NoError(t, err)
	return []*forward.Dual{rd.Mul(c), rd.Mul(s)}
}

func TestFromDuals_MatchesFiniteDifference(t *testing.T) {
	const r, theta = 2.0, 0.6
	vars := []string{"r", "theta"}

	got, err := jacobian.FromDuals(vars, polar(t, r, theta))
	require.NoError(t, err)

	want := mat.NewDense(2, 2, nil)
	fd.Jacobian(want, func(y, x []float64) {
		y[0] = x[0] * math.Cos(x[1])
		y[1] = x[0] * math.Sin(x[1])
	}, []float64{r, theta}, &fd.JacobianSettings{Formula: fd.Central})

	assert.True(t, mat.EqualApprox(got, want, 1e-8), "got\n%v\nwant\n%v",
		mat.Formatted(got), mat.Formatted(want))

	// det J = r
	assert.InDelta(t, r, mat.Det(got), 1e-12)
}

func TestFromVector(t *testing.T) {
	v, err := vector.Vectorize([]string{"x", "y"}, []float64{1, 2}, nil)
	require.NoError(t, err)

	jac, err := jacobian.FromVector([]string{"x", "y"}, v.Pow(2))
	require.NoError(t, err)
	assert.True(t, mat.Equal(jac, mat.NewDense(2, 2, []float64{2, 0, 0, 4})))

	_, err = jacobian.FromVector([]string{"x"}, nil)
	assert.ErrorIs(t, err, autodiff.ErrInvalidArgument)
}

func TestFromGradients_MatchesForward(t *testing.T) {
	vars := []string{"r", "theta"}
	outputs := []func(r, th *reverse.Node) (*reverse.Node, error){
		func(r, th *reverse.Node) (*reverse.Node, error) {
			c, err := reverse.Cos(th)
			if err != nil {
				return nil, err
			}
			return r.Mul(c), nil
		},
		func(r, th *reverse.Node) (*reverse.Node, error) {
			s, err := reverse.Sin(th)
			if err != nil {
				return nil, err
			}
			return r.Mul(s), nil
		},
	}

	var grads []map[string]float64
	for _, out := range outputs {
		res, err := reverse.Evaluate(func(s *reverse.Session) (*reverse.Node, error) {
			r, err := s.Var(2, "r")
			if err != nil {
				return nil, err
			}
			th, err := s.Var(0.6, "theta")
			if err != nil {
				return nil, err
			}
			return out(r, th)
		}, vars...)
		require.NoError(t, err)
		grads = append(grads, res.Adjoints)
	}

	rev, err := jacobian.FromGradients(vars, grads)
	require.NoError(t, err)
	fwd, err := jacobian.FromDuals(vars, polar(t, 2, 0.6))
	require.NoError(t, err)
	assert.True(t, mat.EqualApprox(rev, fwd, 1e-14))
}

func TestGradient(t *testing.T) {
	x, err := forward.New("x", 3)
	require.NoError(t, err)
	y, err := forward.New("y", 5)
	require.NoError(t, err)

	g, err := jacobian.Gradient([]string{"x", "y", "unused"}, x.Mul(y))
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 0}, g.RawVector().Data)
}

func TestErrors(t *testing.T) {
	_, err := jacobian.FromDuals([]string{"x"}, nil)
	assert.ErrorIs(t, err, autodiff.ErrInvalidArgument)

	_, err = jacobian.FromDuals(nil, []*forward.Dual{forward.Const(1)})
	assert.ErrorIs(t, err, autodiff.ErrInvalidArgument)

	_, err = jacobian.FromDuals([]string{"x"}, []*forward.Dual{nil})
	assert.ErrorIs(t, err, autodiff.ErrInvalidArgument)

	_, err = jacobian.FromGradients([]string{"x"}, nil)
	assert.ErrorIs(t, err, autodiff.ErrInvalidArgument)
}

func TestFromReverse(t *testing.T) {
	vars := []string{"r", "theta"}
	leaves := func(s *reverse.Session) (*reverse.Node, *reverse.Node, error) {
		r, err := s.Var(2, "r")
		if err != nil {
			return nil, nil, err
		}
		th, err := s.Var(0.6, "theta")
		return r, th, err
	}
	outputs := []reverse.BuildFunc{
		func(s *reverse.Session) (*reverse.Node, error) {
			r, th, err := leaves(s)
			if err != nil {
				return nil, err
			}
			c, err := reverse.Cos(th)
			if err != nil {
				return nil, err
			}
			return r.Mul(c), nil
		},
		func(s *reverse.Session) (*reverse.Node, error) {
			r, th, err := leaves(s)
			if err != nil {
				return nil, err
			}
			sn, err := reverse.Sin(th)
			if err != nil {
				return nil, err
			}
			return r.Mul(sn), nil
		},
	}

	want, err := jacobian.FromDuals(vars, polar(t, 2, 0.6))
	require.NoError(t, err)

	for _, cfg := range []parallel.Config{
		{Enabled: false},
		{Enabled: true, NumWorkers: 2, MinItems: 1},
	} {
		got, err := jacobian.FromReverse(vars, outputs, cfg)
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(got, want, 1e-14))
	}
}

func TestFromReverse_Error(t *testing.T) {
	outputs := []reverse.BuildFunc{
		func(s *reverse.Session) (*reverse.Node, error) {
			x, err := s.Var(-1, "x")
			if err != nil {
				return nil, err
			}
			return reverse.Sqrt(x)
		},
	}
	_, err := jacobian.FromReverse([]string{"x"}, outputs, parallel.DefaultConfig())
	assert.ErrorIs(t, err, autodiff.ErrDomain)

	_, err = jacobian.FromReverse([]string{"x"}, nil, parallel.DefaultConfig())
	assert.ErrorIs(t, err, autodiff.ErrInvalidArgument)
}
