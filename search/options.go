// Package search measures how far a tensor is from each candidate symmetry,
// optionally after a local search over rigid rotations.
package search

import (
	"runtime"
	"sync"

	"github.com/notargets/tensym/report"
	"github.com/notargets/tensym/rotation"
)

// Options control the rotation search. The zero value is usable: every
// unset field takes its default.
type Options struct {
	// Tolerance is the absolute change of the squared residual below which
	// the minimiser is considered converged.
	Tolerance float64
	// Window is the number of major iterations without sufficient
	// improvement that end the search.
	Window int
	// MaxIterations and MaxEvaluations bound each local search.
	MaxIterations  int
	MaxEvaluations int
	// SimplexSize is the initial Nelder-Mead simplex edge, in radians.
	SimplexSize float64
	// Starts are extra starting orientations tried after (0,0,0).
	Starts []rotation.Angles
	// Parallel spreads the labels over all CPUs.
	Parallel bool
	Reporter report.Reporter
}

const (
	DefaultTolerance      = 1e-12
	DefaultWindow         = 50
	DefaultMaxIterations  = 5000
	DefaultMaxEvaluations = 20000
	DefaultSimplexSize    = 0.05
)

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Window <= 0 {
		o.Window = DefaultWindow
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.MaxEvaluations <= 0 {
		o.MaxEvaluations = DefaultMaxEvaluations
	}
	if o.SimplexSize <= 0 {
		o.SimplexSize = DefaultSimplexSize
	}
	o.Reporter = report.Or(o.Reporter)
	return o
}

// each runs fn for every index below n, on all CPUs when parallel is set.
// Every index is handled exactly once, so fn may write its own slot of a
// shared result slice without locking.
func each(n int, parallel bool, fn func(i int)) {
	workers := 1
	if parallel {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(wid int) {
			defer wg.Done()
			for i := wid; i < n; i += workers {
				fn(i)
			}
		}(w)
	}
	wg.Wait()
}
