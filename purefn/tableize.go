package purefn

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/lazybind/effect_monad_go/effect"
)

type ComparableOrStringer any
type ComparableOrString any

// Store is the memo table behind a tableized effect family. The default
// is the bounded dual-generation store; anything with cache semantics
// (e.g. ristretto) can be plugged in via TableizeEffWithStore.
type Store[V any] interface {
	Load(key any) (V, bool)
	Store(key any, value V)
}

// TableizeEff memoizes a keyed family of effects: the returned
// constructor yields effects that consult the table at invocation time
// and run the underlying effect only on a miss. The table holds at
// most 2*maxTableSize entries across its two generations.
func TableizeEff[K ComparableOrStringer, V any](
	effFn func(K) effect.Effect[V],
	maxTableSize uint32,
) func(K) effect.Effect[V] {
	return TableizeEffWithStore(effFn, newDualMapStore[V](maxTableSize))
}

// TableizeEffWithStore is TableizeEff with a caller-supplied memo store.
func TableizeEffWithStore[K ComparableOrStringer, V any](
	effFn func(K) effect.Effect[V],
	store Store[V],
) func(K) effect.Effect[V] {
	return func(k K) effect.Effect[V] {
		return effect.Defer(func() V {
			key := tableKey(k)
			if v, ok := store.Load(key); ok {
				return v
			}
			v := effFn(k).Invoke()
			store.Store(key, v)
			return v
		})
	}
}

// tableKey normalizes a key for table lookup. Stringer keys collapse
// to the 64-bit xxhash of their string form so that equal-by-String
// values share an entry; other keys must be comparable and are used
// directly.
func tableKey(i ComparableOrStringer) ComparableOrString {
	if stringer, ok := i.(fmt.Stringer); ok {
		return xxhash.Sum64String(stringer.String())
	}
	return i
}
