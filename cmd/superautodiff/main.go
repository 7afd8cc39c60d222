// Package main provides the superautodiff CLI.
//
// It evaluates catalog problems in forward and reverse mode, checks both
// gradients against central finite differences, and optionally dumps the
// reverse-mode tape or runs gradient descent.
//
// Usage:
//
//	superautodiff                                  # every problem, both modes
//	superautodiff -problem linear -at 4,7,3 -tape
//	superautodiff -problem rosenbrock -minimize
//	superautodiff -config runs.yaml
//	superautodiff version
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"
	"k8s.io/klog/v2"

	"github.com/superautodiff/superautodiff/internal/autodiff/reverse"
	"github.com/superautodiff/superautodiff/internal/catalog"
	"github.com/superautodiff/superautodiff/internal/config"
	"github.com/superautodiff/superautodiff/internal/jacobian"
	"github.com/superautodiff/superautodiff/internal/optim"
)

const version = "v0.1.0"

// errCheckFailed is returned when a gradient disagrees with finite differences.
var errCheckFailed = errors.New("gradient check failed")

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("superautodiff %s\n", version)
		return
	}

	ctx := context.Background()
	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "", "YAML run configuration")
	problem := flag.String("problem", "", "catalog problem to evaluate (default: all)")
	at := flag.String("at", "", "comma-separated evaluation point")
	mode := flag.String("mode", config.ModeBoth, "forward, reverse or both")
	tape := flag.Bool("tape", false, "print the reverse-mode tape")
	minimize := flag.Bool("minimize", false, "minimise the problem with reverse-mode gradients")

	klog.InitFlags(nil)
	flag.Parse()

	log := klog.FromContext(ctx)

	cfg, err := loadConfig(*configPath, *problem, *at, *mode, *tape, *minimize)
	if err != nil {
		return err
	}
	log.Info("Starting superautodiff", "version", version, "runs", len(cfg.Runs), "tolerance", cfg.Tolerance)

	var failed []string
	for _, rc := range cfg.Runs {
		err := execute(ctx, os.Stdout, cfg, rc)
		if errors.Is(err, errCheckFailed) {
			failed = append(failed, rc.Problem)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", rc.Problem, err)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", errCheckFailed, strings.Join(failed, ", "))
	}
	return nil
}

// loadConfig builds the run list from the config file or from flags. A
// -problem flag overrides the runs of the file.
func loadConfig(path, problem, at, mode string, tape, minimize bool) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if problem == "" {
		if path == "" {
			for i := range cfg.Runs {
				cfg.Runs[i].Mode = mode
				cfg.Runs[i].Tape = tape
				cfg.Runs[i].Minimize = minimize
			}
		}
		return cfg, cfg.Validate()
	}

	point, err := parsePoint(at)
	if err != nil {
		return nil, err
	}
	cfg.Runs = []config.RunConfig{{
		Problem:  problem,
		At:       point,
		Mode:     mode,
		Tape:     tape,
		Minimize: minimize,
	}}
	return cfg, cfg.Validate()
}

func parsePoint(s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	point := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid -at coordinate %q: %w", f, err)
		}
		point[i] = v
	}
	return point, nil
}

// execute evaluates one run and writes the report to w.
func execute(ctx context.Context, w io.Writer, cfg *config.Config, rc config.RunConfig) error {
	log := klog.FromContext(ctx).WithValues("problem", rc.Problem)

	p, err := catalog.Get(rc.Problem)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "== %s: f(%s) = %s\n", p.Name, strings.Join(p.Vars, ", "), p.Description)

	switch rc.Mode {
	case config.ModeForward:
		if err := reportForward(w, p, rc.At); err != nil {
			return err
		}
	case config.ModeReverse:
		if err := reportReverse(w, p, rc.At, rc.Tape); err != nil {
			return err
		}
	default:
		if err := reportCheck(w, log, p, rc, cfg); err != nil {
			return err
		}
	}

	if rc.Minimize {
		if err := reportMinimize(w, log, p, rc.At, cfg.Minimize); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)
	return nil
}

func reportForward(w io.Writer, p *catalog.Problem, at []float64) error {
	y, err := p.EvalForward(at)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "value    %g\n", y.Value())
	jac, err := jacobian.Gradient(p.Vars, y)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "forward  %v\n", mat.Formatted(jac.T(), mat.Squeeze()))
	return nil
}

func reportReverse(w io.Writer, p *catalog.Problem, at []float64, tape bool) error {
	res, err := p.EvalReverse(at)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "value    %g\n", res.Value)
	jac, err := jacobian.FromGradients(p.Vars, []map[string]float64{res.Adjoints})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "reverse  %v\n", mat.Formatted(jac, mat.Squeeze()))
	if tape {
		printTape(w, res)
	}
	return nil
}

func reportCheck(w io.Writer, log klog.Logger, p *catalog.Problem, rc config.RunConfig, cfg *config.Config) error {
	res, err := p.Check(rc.At, cfg.Step)
	if err != nil {
		return err
	}
	grads := mat.NewDense(3, len(p.Vars), nil)
	grads.SetRow(0, res.Forward)
	grads.SetRow(1, res.Reverse)
	grads.SetRow(2, res.Numeric)

	fmt.Fprintf(w, "point    %v\n", res.Point)
	fmt.Fprintf(w, "value    %g\n", res.Value)
	fmt.Fprintf(w, "gradient (forward / reverse / finite difference)\n%v\n",
		mat.Formatted(grads, mat.Prefix("         "), mat.Squeeze()))
	fmt.Fprintf(w, "mode err %.3g  numeric err %.3g  tape rows %d\n", res.ModeErr, res.NumericErr, res.Rows)

	if rc.Tape {
		rev, err := p.EvalReverse(rc.At)
		if err != nil {
			return err
		}
		printTape(w, rev)
	}

	if res.NumericErr > cfg.Tolerance || res.ModeErr > cfg.Tolerance {
		log.Info("Gradient check failed", "modeErr", res.ModeErr, "numericErr", res.NumericErr)
		return errCheckFailed
	}
	log.V(2).Info("Gradient check passed", "numericErr", res.NumericErr)
	return nil
}

func printTape(w io.Writer, res reverse.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "node\tparent1\t∂/∂parent1\tparent2\t∂/∂parent2\tadjoint")
	for _, row := range res.Tape {
		p2, d2 := "-", "-"
		if row.HasParent2 {
			p2, d2 = row.Parent2, strconv.FormatFloat(row.Partial2, 'g', 6, 64)
		}
		adj := "-"
		if a, ok := res.Adjoints[row.Node]; ok {
			adj = strconv.FormatFloat(a, 'g', 6, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.6g\t%s\t%s\t%s\n", row.Node, row.Parent1, row.Partial1, p2, d2, adj)
	}
	tw.Flush()
}

func reportMinimize(w io.Writer, log klog.Logger, p *catalog.Problem, at []float64, mc config.MinimizeConfig) error {
	start, err := p.Params(at)
	if err != nil {
		return err
	}
	var opt optim.Optimizer
	switch mc.Optimizer {
	case config.OptimizerSGD:
		opt = optim.NewSGD(optim.SGDConfig{LR: mc.LR, Momentum: mc.Momentum})
	default:
		opt = optim.NewAdam(optim.AdamConfig{LR: mc.LR})
	}

	res, err := optim.Minimize(p.Objective(), start, opt, optim.MinimizeConfig{MaxIter: mc.MaxIter, Tol: mc.Tol})
	if err != nil && !errors.Is(err, optim.ErrNotConverged) {
		return err
	}
	if err != nil {
		log.Info("Minimisation did not converge", "iterations", res.Iterations, "gradNorm", res.GradNorm)
	}

	stride := max(1, len(res.Trace)/10)
	fmt.Fprintf(w, "minimize (%s, lr %g)\n", mc.Optimizer, mc.LR)
	for i, step := range res.Trace {
		if i%stride == 0 || i == len(res.Trace)-1 {
			fmt.Fprintf(w, "  iter %-6d f = %-12.6g |∇f| = %.3g\n", step.Iter, step.Value, step.GradNorm)
		}
	}
	fmt.Fprintf(w, "  argmin   %v (converged: %t)\n", orderedParams(p.Vars, res.Params), res.Converged)
	return nil
}

func orderedParams(vars []string, params optim.Params) []float64 {
	out := make([]float64, len(vars))
	for i, name := range vars {
		out[i] = params[name]
	}
	return out
}
