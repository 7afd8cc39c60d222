package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.NotEmpty(t, cfg.Runs)
	for _, run := range cfg.Runs {
		assert.Equal(t, ModeBoth, run.Mode)
		assert.Empty(t, run.At)
	}
	assert.Equal(t, OptimizerAdam, cfg.Minimize.Optimizer)
}

func TestLoad_ValidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.yaml")
	content := `
tolerance: 1e-4
minimize:
  optimizer: sgd
  lr: 0.001
  momentum: 0.9
runs:
  - problem: linear
    at: [4, 7, 3]
  - problem: rosenbrock
    mode: reverse
    tape: true
    minimize: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1e-4, cfg.Tolerance)
	assert.Equal(t, OptimizerSGD, cfg.Minimize.Optimizer)
	assert.Equal(t, 0.9, cfg.Minimize.Momentum)
	assert.Equal(t, 5000, cfg.Minimize.MaxIter, "unset fields keep defaults")

	require.Len(t, cfg.Runs, 2)
	assert.Equal(t, "linear", cfg.Runs[0].Problem)
	assert.Equal(t, []float64{4, 7, 3}, cfg.Runs[0].At)
	assert.Equal(t, ModeBoth, cfg.Runs[0].Mode)
	assert.True(t, cfg.Runs[1].Tape)
	assert.True(t, cfg.Runs[1].Minimize)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_NoRunsUsesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("step: 1e-6\n"))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, cfg.Step)
	assert.Len(t, cfg.Runs, len(Default().Runs))
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "runs: [\n"},
		{"unknown problem", "runs:\n  - problem: nope\n"},
		{"unknown mode", "runs:\n  - problem: linear\n    mode: sideways\n"},
		{"wrong point", "runs:\n  - problem: linear\n    at: [1, 2]\n"},
		{"minimize forward", "runs:\n  - problem: linear\n    mode: forward\n    minimize: true\n"},
		{"negative tolerance", "tolerance: -1\n"},
		{"negative step", "step: -0.1\n"},
		{"unknown optimizer", "minimize:\n  optimizer: lbfgs\n"},
		{"zero lr", "minimize:\n  lr: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
