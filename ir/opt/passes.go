package opt

import (
	"sync"

	"github.com/EmulationChannel/yuzu/ir"
)

// Pass transforms a single function in place.
type Pass func(fn *ir.Function) (Stats, error)

// Passes is an ordered pipeline of function-local transforms, run one
// function at a time by Run or across every function concurrently by
// RunConcurrent. The zero value runs nothing; use DefaultPasses for the
// pipeline this package ships.
type Passes []Pass

// DefaultPasses returns the pipeline every frontend should run a freshly
// built Program through before handing it to a backend: SSA construction
// is, for now, the only member. Later canonicalization/DCE passes are out
// of scope for this package.
func DefaultPasses() Passes {
	return Passes{ConstructSSA}
}

// Run executes every pass over fn in order, accumulating Stats and
// stopping at the first error.
func (p Passes) Run(fn *ir.Function) (Stats, error) {
	var total Stats
	for _, pass := range p {
		s, err := pass(fn)
		total.PhisCreated += s.PhisCreated
		total.PhisElided += s.PhisElided
		total.UndefsInserted += s.UndefsInserted
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// RunConcurrent runs the pipeline over every function of prog in its own
// goroutine. Functions share no mutable state — each owns its own Arena —
// so this needs no locking beyond collecting results. The first error
// observed across all functions is returned; Stats from functions that
// errored are still included in the total for whatever work they
// completed.
func (p Passes) RunConcurrent(prog *ir.Program) (Stats, error) {
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		total Stats
		first error
	)
	for _, fn := range prog.Functions {
		wg.Add(1)
		go func(fn *ir.Function) {
			defer wg.Done()
			s, err := p.Run(fn)
			mu.Lock()
			defer mu.Unlock()
			total.PhisCreated += s.PhisCreated
			total.PhisElided += s.PhisElided
			total.UndefsInserted += s.UndefsInserted
			if err != nil && first == nil {
				first = err
			}
		}(fn)
	}
	wg.Wait()
	return total, first
}
