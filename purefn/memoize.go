package purefn

import (
	"sync"

	"github.com/lazybind/effect_monad_go/effect"
)

// Memoize returns an effect that invokes e at most once and replays
// the cached result on every later invocation. Safe for concurrent
// invokers; all of them observe the result of the single run.
func Memoize[A any](e effect.Effect[A]) effect.Effect[A] {
	var (
		once sync.Once
		res  A
	)
	return effect.Defer(func() A {
		once.Do(func() {
			res = e.Invoke()
		})
		return res
	})
}
