// Package parallel provides the chunked fan-out used by the CPU kernels.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool `yaml:"enabled"`        // Whether parallel execution is enabled.
	NumWorkers   int  `yaml:"num_workers"`    // Maximum goroutines per call; <= 0 means runtime.NumCPU().
	MinChunkSize int  `yaml:"min_chunk_size"` // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 4096,
	}
}

func (cfg Config) workers() int {
	if cfg.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return cfg.NumWorkers
}

// ForRange splits [0, n) into contiguous chunks and calls f(start, end) for each.
// Falls back to a single call if parallelism is disabled or n is too small.
// All chunks have completed when ForRange returns.
func ForRange(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	workers := cfg.workers()
	if !cfg.Enabled || workers == 1 || n < 2*max(cfg.MinChunkSize, 1) {
		f(0, n)
		return
	}

	chunkSize := max((n+workers-1)/workers, cfg.MinChunkSize, 1)

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			f(start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForBatch is For over a batch × rows grid, as used by batched matmul.
func ForBatch(batch, rows int, f func(b, r int), cfg Config) {
	For(batch*rows, func(k int) {
		f(k/rows, k%rows)
	}, cfg)
}
