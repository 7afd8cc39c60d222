package parallel

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 1000

	err := For(n, func(_ int) error {
		atomic.AddInt64(&counter, 1)
		return nil
	}, cfg)

	require.NoError(t, err)
	assert.Equal(t, int64(n), counter)
}

func TestFor_EveryIndexOnce(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, MinItems: 1}

	seen := make([]int32, 50)
	require.NoError(t, For(len(seen), func(i int) error {
		atomic.AddInt32(&seen[i], 1)
		return nil
	}, cfg))

	for i, c := range seen {
		assert.Equal(t, int32(1), c, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false}

	var order []int
	err := For(5, func(i int) error {
		order = append(order, i)
		return nil
	}, cfg)

	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestFor_LowestErrorWins(t *testing.T) {
	errOdd := errors.New("odd")
	for _, cfg := range []Config{
		{Enabled: false},
		{Enabled: true, NumWorkers: 8, MinItems: 1},
	} {
		var ran int64
		err := For(20, func(i int) error {
			atomic.AddInt64(&ran, 1)
			if i%2 == 1 {
				return fmt.Errorf("item %d: %w", i, errOdd)
			}
			return nil
		}, cfg)

		require.ErrorIs(t, err, errOdd)
		assert.EqualError(t, err, "item 1: odd")
		assert.Equal(t, int64(20), ran)
	}
}

func TestFor_Empty(t *testing.T) {
	assert.NoError(t, For(0, func(int) error {
		t.Fatal("must not be called")
		return nil
	}, DefaultConfig()))
}

func BenchmarkFor(b *testing.B) {
	cfg := DefaultConfig()
	n := 10000

	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = For(n, func(j int) error {
				atomic.AddInt64(&sum, int64(j))
				return nil
			}, cfg)
		}
	})

	b.Run("sequential", func(b *testing.B) {
		seq := Config{Enabled: false}
		for i := 0; i < b.N; i++ {
			var sum int64
			_ = For(n, func(j int) error {
				atomic.AddInt64(&sum, int64(j))
				return nil
			}, seq)
		}
	})
}
