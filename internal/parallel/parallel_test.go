package parallel

import (
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func parallelConfig() Config {
	return Config{Enabled: true, NumWorkers: 4, MinChunkSize: 8}
}

func TestFor(t *testing.T) {
	var counter int64
	n := 1000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, parallelConfig())

	assert.Equal(t, int64(n), counter)
}

func TestForRange_CoversEveryIndexOnce(t *testing.T) {
	for _, n := range []int{1, 7, 16, 17, 100, 1001} {
		var mu sync.Mutex
		var chunks [][2]int
		ForRange(n, func(start, end int) {
			mu.Lock()
			chunks = append(chunks, [2]int{start, end})
			mu.Unlock()
		}, parallelConfig())

		sort.Slice(chunks, func(i, j int) bool { return chunks[i][0] < chunks[j][0] })
		next := 0
		for _, c := range chunks {
			require.Equal(t, next, c[0], "n=%d: gap or overlap", n)
			require.Less(t, c[0], c[1])
			next = c[1]
		}
		assert.Equal(t, n, next)
	}
}

func TestForRange_ZeroIsNoop(t *testing.T) {
	called := false
	ForRange(0, func(_, _ int) { called = true }, parallelConfig())
	assert.False(t, called)
}

func TestForBatch(t *testing.T) {
	batch, rows := 4, 8
	results := make([][]bool, batch)
	for b := range results {
		results[b] = make([]bool, rows)
	}

	ForBatch(batch, rows, func(b, r int) {
		results[b][r] = true
	}, parallelConfig())

	for b := 0; b < batch; b++ {
		for r := 0; r < rows; r++ {
			assert.True(t, results[b][r], "missing result at [%d][%d]", b, r)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	calls := 0
	ForRange(100, func(start, end int) {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
	}, cfg)
	assert.Equal(t, 1, calls)
}

func TestFor_SmallChunk(t *testing.T) {
	// Small work units fall back to sequential.
	cfg := DefaultConfig()

	calls := 0
	ForRange(cfg.MinChunkSize-1, func(_, _ int) { calls++ }, cfg)
	assert.Equal(t, 1, calls)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Positive(t, cfg.NumWorkers)
	assert.Positive(t, cfg.MinChunkSize)
	assert.Positive(t, Config{}.workers())
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	cfg.MinChunkSize = 256
	n := 100000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		cfgSeq := cfg
		cfgSeq.Enabled = false
		for i := 0; i < b.N; i++ {
			var sum int64
			For(n, func(i int) {
				atomic.AddInt64(&sum, int64(i))
			}, cfgSeq)
		}
	})
}
