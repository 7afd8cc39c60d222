package reverse_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superautodiff/superautodiff/internal/autodiff"
	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
)

func TestEvaluate_ClearsTape(t *testing.T) {
	s := reverse.NewSession()
	res, err := s.Evaluate(func(s *reverse.Session) (*reverse.Node, error) {
		x, err := s.Var(3, "x")
		if err != nil {
			return nil, err
		}
		return x.Mul(x), nil
	})
	require.NoError(t, err)

	assert.Equal(t, 9.0, res.Value)
	assert.Equal(t, "y1", res.Output)
	assert.Equal(t, map[string]float64{"x": 6}, res.Adjoints)
	assert.Len(t, res.Tape, 2)
	assert.Equal(t, 0, s.Len())
}

func TestEvaluate_ClearsOnError(t *testing.T) {
	s := reverse.NewSession()
	_, err := s.Evaluate(func(s *reverse.Session) (*reverse.Node, error) {
		x, err := s.Var(-1, "x")
		if err != nil {
			return nil, err
		}
		return reverse.Log(x)
	})
	assert.ErrorIs(t, err, autodiff.ErrDomain)
	assert.Equal(t, 0, s.Len())
}

func TestEvaluate_RecoversMisuse(t *testing.T) {
	other := reverse.NewSession()
	foreign, err := other.Var(1, "f")
	require.NoError(t, err)

	s := reverse.NewSession()
	_, err = s.Evaluate(func(s *reverse.Session) (*reverse.Node, error) {
		x, err := s.Var(2, "x")
		if err != nil {
			return nil, err
		}
		return x.Add(foreign), nil
	})
	require.Error(t, err)
	var e *autodiff.Error
	require.True(t, errors.As(err, &e))
	assert.ErrorIs(t, err, autodiff.ErrInvalidArgument)
	assert.Equal(t, "f", e.Operand)
	assert.Equal(t, 0, s.Len())
}

func TestEvaluate_NamesRestart(t *testing.T) {
	s := reverse.NewSession()
	build := func(s *reverse.Session) (*reverse.Node, error) {
		x, err := s.Var(2, "")
		if err != nil {
			return nil, err
		}
		return x.Pow(3), nil
	}
	first, err := s.Evaluate(build, "y1")
	require.NoError(t, err)
	second, err := s.Evaluate(build, "y1")
	require.NoError(t, err)

	assert.Equal(t, first.Tape, second.Tape)
	assert.Equal(t, map[string]float64{"y1": 12}, second.Adjoints)
}

func TestEvaluate_Concurrent(t *testing.T) {
	s := reverse.NewSession()
	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := s.Evaluate(func(s *reverse.Session) (*reverse.Node, error) {
				x, err := s.Var(float64(i), "x")
				if err != nil {
					return nil, err
				}
				return x.Pow(2), nil
			}, "x")
			if err == nil {
				results[i] = res.Adjoints["x"]
			}
		}(i)
	}
	wg.Wait()
	for i, g := range results {
		assert.Equal(t, 2*float64(i), g)
	}
}
