package optim

// SGD is plain gradient descent with optional heavy-ball momentum:
//
//	v = momentum·v + g
//	x -= lr·v
//
// With zero momentum the velocity is just the gradient.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//	res, _ := reverse.Evaluate(build, "x", "y")
//	sgd.Step(params, res.Adjoints)
type SGD struct {
	lr         float64
	momentum   float64
	velocities map[string]float64
}

// SGDConfig configures NewSGD.
type SGDConfig struct {
	LR       float64 // Defaults to 0.01
	Momentum float64 // In [0, 1); zero disables momentum
}

// NewSGD returns an SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return &SGD{
		lr:         orDefault(config.LR, 0.01),
		momentum:   config.Momentum,
		velocities: make(map[string]float64),
	}
}

// Step moves every parameter that has a gradient against it. Parameters
// missing from grads did not take part in the evaluation and keep their value.
func (s *SGD) Step(params Params, grads map[string]float64) error {
	if err := checkGradients("sgd", params, grads); err != nil {
		return err
	}
	for name := range params {
		g, ok := grads[name]
		if !ok {
			continue
		}
		if s.momentum != 0 {
			g += s.momentum * s.velocities[name]
			s.velocities[name] = g
		}
		params[name] -= s.lr * g
	}
	return nil
}

// GetLR returns the learning rate.
func (s *SGD) GetLR() float64 { return s.lr }

// SetLR replaces the learning rate, e.g. for a decay schedule.
func (s *SGD) SetLR(lr float64) { s.lr = lr }

// Velocity returns the momentum buffer for a parameter (0 before its first
// update or without momentum).
func (s *SGD) Velocity(name string) float64 {
	return s.velocities[name]
}
