package effect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lazybind/effect_monad_go/effect"
)

func TestOnce_InvokesUnderlyingOnce(t *testing.T) {
	runs := 0
	o := effect.OnceOf(effect.Defer(func() int {
		runs++
		return 42
	}))

	assert.False(t, o.Consumed())
	assert.Equal(t, 42, o.Invoke())
	assert.True(t, o.Consumed())
	assert.Equal(t, 1, runs)
}

func TestOnce_PanicsOnReentry(t *testing.T) {
	o := effect.OnceOf(effect.Of(1))
	o.Invoke()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on second invocation, but didn't panic")
		}
	}()
	o.Invoke()
}

func TestOnce_UninvokedDoesNothing(t *testing.T) {
	x := 0
	o := effect.OnceOf(effect.Defer(func() effect.Unit {
		x++
		return effect.Unit{}
	}))
	_ = o
	assert.Equal(t, 0, x)
}

func TestOnce_ComposesAsEffect(t *testing.T) {
	x := 0
	o := effect.OnceOf(effect.Defer(func() int {
		x++
		return 10
	}))
	e := effect.Bind[int, int](o, func(a int) effect.Effect[int] {
		return effect.Of(a + x)
	})
	assert.Equal(t, 11, e.Invoke())
}
