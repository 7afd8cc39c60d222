package jacobian

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
	"github.com/superautodiff/superautodiff/internal/parallel"
)

// FromReverse builds the Jacobian with one reverse-mode pass per output.
// Each builder runs on its own fresh Session, concurrently when cfg allows,
// and must record every name in vars as a leaf.
func FromReverse(vars []string, outputs []reverse.BuildFunc, cfg parallel.Config) (*mat.Dense, error) {
	if err := check(vars, len(outputs)); err != nil {
		return nil, err
	}
	grads := make([]map[string]float64, len(outputs))
	err := parallel.For(len(outputs), func(i int) error {
		res, err := reverse.Evaluate(outputs[i], vars...)
		if err != nil {
			return fmt.Errorf("output %d: %w", i, err)
		}
		grads[i] = res.Adjoints
		return nil
	}, cfg)
	if err != nil {
		return nil, err
	}
	return FromGradients(vars, grads)
}
