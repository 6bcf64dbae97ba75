// Package parallel splits independent row computations across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinWork    int  // Minimum multiply-adds per goroutine to avoid overhead.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinWork:    1 << 15,
	}
}

// Sequential returns a config that never spawns goroutines.
func Sequential() Config {
	return Config{Enabled: false, NumWorkers: 1}
}

// Rows calls f(lo, hi) over disjoint ranges covering [0, n).
// rowCost is the work per row; ranges are sized so each one carries at
// least cfg.MinWork. Falls back to a single f(0, n) call when parallelism is
// disabled or the total work is too small. Rows returns after every f has.
func Rows(n, rowCost int, f func(lo, hi int), cfg Config) {
	if n <= 0 {
		return
	}
	workers := cfg.NumWorkers
	if !cfg.Enabled || workers < 2 || n < 2 || n*max(rowCost, 1) < 2*cfg.MinWork {
		f(0, n)
		return
	}

	minRows := max(cfg.MinWork/max(rowCost, 1), 1)
	chunk := max((n+workers-1)/workers, minRows)

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
