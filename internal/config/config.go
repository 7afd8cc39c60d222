// Package config handles run configuration for the superautodiff command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/superautodiff/superautodiff/internal/catalog"
)

// Evaluation modes.
const (
	ModeForward = "forward"
	ModeReverse = "reverse"
	ModeBoth    = "both"
)

// Optimizer names.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config is the root configuration structure.
type Config struct {
	// Tolerance is the largest accepted gap between the AD gradient and the
	// finite-difference estimate.
	Tolerance float64 `yaml:"tolerance"`

	// Step is the finite-difference step. Zero selects gonum's default.
	Step float64 `yaml:"step"`

	Minimize MinimizeConfig `yaml:"minimize"`
	Runs     []RunConfig    `yaml:"runs"`
}

// RunConfig selects one catalog problem and how to evaluate it.
type RunConfig struct {
	Problem  string    `yaml:"problem"`
	At       []float64 `yaml:"at"` // Empty means the problem's start point
	Mode     string    `yaml:"mode"`
	Tape     bool      `yaml:"tape"`
	Minimize bool      `yaml:"minimize"`
}

// MinimizeConfig holds gradient descent settings.
type MinimizeConfig struct {
	Optimizer string  `yaml:"optimizer"`
	LR        float64 `yaml:"lr"`
	Momentum  float64 `yaml:"momentum"` // SGD only
	MaxIter   int     `yaml:"max_iter"`
	Tol       float64 `yaml:"tol"`
}

// Default returns the default configuration: every catalog problem at its
// start point, in both modes.
func Default() *Config {
	cfg := &Config{
		Tolerance: 1e-5,
		Minimize: MinimizeConfig{
			Optimizer: OptimizerAdam,
			LR:        0.05,
			MaxIter:   5000,
			Tol:       1e-6,
		},
	}
	for _, name := range catalog.Names() {
		cfg.Runs = append(cfg.Runs, RunConfig{Problem: name, Mode: ModeBoth})
	}
	return cfg
}

// Load reads a YAML file over Default and validates the result. Runs listed
// in the file replace the default runs.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	cfg.Runs = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if len(cfg.Runs) == 0 {
		cfg.Runs = Default().Runs
	}
	for i := range cfg.Runs {
		if cfg.Runs[i].Mode == "" {
			cfg.Runs[i].Mode = ModeBoth
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.Step < 0 {
		return fmt.Errorf("step must not be negative, got %g", c.Step)
	}
	if err := c.Minimize.validate(); err != nil {
		return fmt.Errorf("minimize: %w", err)
	}
	for i, run := range c.Runs {
		if err := run.validate(); err != nil {
			return fmt.Errorf("runs[%d]: %w", i, err)
		}
	}
	return nil
}

func (r RunConfig) validate() error {
	p, err := catalog.Get(r.Problem)
	if err != nil {
		return err
	}
	if len(r.At) != 0 && len(r.At) != len(p.Vars) {
		return fmt.Errorf("problem %s takes %d coordinates, got %d", r.Problem, len(p.Vars), len(r.At))
	}
	switch r.Mode {
	case ModeForward, ModeReverse, ModeBoth:
	default:
		return fmt.Errorf("unknown mode %q (want %s, %s or %s)", r.Mode, ModeForward, ModeReverse, ModeBoth)
	}
	if r.Minimize && r.Mode == ModeForward {
		return fmt.Errorf("minimize needs reverse-mode gradients, mode is %s", r.Mode)
	}
	return nil
}

func (m MinimizeConfig) validate() error {
	switch m.Optimizer {
	case OptimizerSGD, OptimizerAdam:
	default:
		return fmt.Errorf("unknown optimizer %q", m.Optimizer)
	}
	if m.LR <= 0 {
		return fmt.Errorf("lr must be positive, got %g", m.LR)
	}
	if m.MaxIter <= 0 {
		return fmt.Errorf("max_iter must be positive, got %d", m.MaxIter)
	}
	if m.Tol <= 0 {
		return fmt.Errorf("tol must be positive, got %g", m.Tol)
	}
	return nil
}
