package optim

import "math"

// Adam is the Adam optimizer over named scalar parameters. It keeps a
// per-parameter running mean of the gradient (m) and of its square (v), both
// bias-corrected by the step count before the update
//
//	x -= lr · m̂ / (√v̂ + eps)
//
// See Kingma & Ba, "Adam: A Method for Stochastic Optimization".
type Adam struct {
	lr    float64
	beta1 float64
	beta2 float64
	eps   float64
	t     int                // Timestep for bias correction
	m     map[string]float64 // First moment estimates
	v     map[string]float64 // Second moment estimates
}

// AdamConfig configures NewAdam.
type AdamConfig struct {
	LR    float64
	Betas [2]float64 // Decay rates of the two running means
	Eps   float64
}

// NewAdam returns an Adam optimizer. Zero fields of config take the usual
// defaults: lr 0.001, betas (0.9, 0.999), eps 1e-8.
func NewAdam(config AdamConfig) *Adam {
	config.LR = orDefault(config.LR, 0.001)
	config.Betas[0] = orDefault(config.Betas[0], 0.9)
	config.Betas[1] = orDefault(config.Betas[1], 0.999)
	config.Eps = orDefault(config.Eps, 1e-8)

	return &Adam{
		lr:    config.LR,
		beta1: config.Betas[0],
		beta2: config.Betas[1],
		eps:   config.Eps,
		m:     make(map[string]float64),
		v:     make(map[string]float64),
	}
}

// Step advances the timestep and updates every parameter that has a gradient.
func (a *Adam) Step(params Params, grads map[string]float64) error {
	if err := checkGradients("adam", params, grads); err != nil {
		return err
	}
	a.t++

	bc1 := 1 - math.Pow(a.beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.beta2, float64(a.t))

	for name := range params {
		g, ok := grads[name]
		if !ok {
			continue
		}

		a.m[name] = a.beta1*a.m[name] + (1-a.beta1)*g
		a.v[name] = a.beta2*a.v[name] + (1-a.beta2)*g*g
		params[name] -= a.lr * (a.m[name] / bc1) / (math.Sqrt(a.v[name]/bc2) + a.eps)
	}
	return nil
}

// GetLR returns the learning rate.
func (a *Adam) GetLR() float64 { return a.lr }

// SetLR replaces the learning rate.
func (a *Adam) SetLR(lr float64) { a.lr = lr }

// GetTimestep returns the number of steps taken.
func (a *Adam) GetTimestep() int { return a.t }
