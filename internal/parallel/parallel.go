// Package parallel runs independent evaluations on a bounded number of
// goroutines.
//
// Reverse-mode passes for different outputs share nothing but their inputs,
// so each one can run on its own Session in its own goroutine.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of concurrent goroutines.
	MinItems   int  // Below this many items, run sequentially.
}

// DefaultConfig returns defaults based on CPU count. A single evaluation is
// already worth a goroutine, so MinItems is small.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   2,
	}
}

// For executes f(i) for i in [0, n) with optional parallelism and returns the
// error of the lowest failing index, so the result does not depend on
// scheduling. Every item runs even when an earlier one failed.
func For(n int, f func(i int) error, cfg Config) error {
	errs := make([]error, n)

	if !cfg.Enabled || cfg.NumWorkers < 2 || n < cfg.MinItems {
		// Sequential fallback.
		for i := 0; i < n; i++ {
			errs[i] = f(i)
		}
		return first(errs)
	}

	var wg sync.WaitGroup
	next := make(chan int)
	for w, nw := 0, min(cfg.NumWorkers, n); w < nw; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range next {
				errs[i] = f(i)
			}
		}()
	}
	for i := 0; i < n; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
	return first(errs)
}

func first(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
