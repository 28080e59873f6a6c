package purefn_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazybind/effect_monad_go/effect"
	"github.com/lazybind/effect_monad_go/purefn"
)

func TestMemoize_RunsAtMostOnce(t *testing.T) {
	runs := 0
	e := purefn.Memoize(effect.Defer(func() int {
		runs++
		return 42
	}))

	assert.Equal(t, 0, runs)
	assert.Equal(t, 42, e.Invoke())
	assert.Equal(t, 42, e.Invoke())
	assert.Equal(t, 1, runs)
}

func TestMemoize_IndependentPerWrapper(t *testing.T) {
	runs := 0
	underlying := effect.Defer(func() int {
		runs++
		return runs
	})

	e1 := purefn.Memoize(underlying)
	e2 := purefn.Memoize(underlying)

	assert.Equal(t, 1, e1.Invoke())
	assert.Equal(t, 2, e2.Invoke())
	assert.Equal(t, 1, e1.Invoke())
	assert.Equal(t, 2, runs)
}

func TestMemoize_ConcurrentInvokersShareOneRun(t *testing.T) {
	runs := 0
	e := purefn.Memoize(effect.Defer(func() int {
		runs++
		return 7
	}))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 7, e.Invoke())
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, runs)
}
