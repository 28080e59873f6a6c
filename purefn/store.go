package purefn

import (
	"sync"
	"sync/atomic"
)

// dualMapStore keeps two generations of entries. Once the live
// generation reaches maxSize it becomes the previous generation (still
// readable) and a fresh map takes its place; the generation it
// displaces is dropped wholesale.
type dualMapStore[V any] struct {
	memos   [2]*sync.Map
	headIdx uint32
	size    atomic.Uint32
	maxSize uint32
}

func newDualMapStore[V any](maxSize uint32) *dualMapStore[V] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	return &dualMapStore[V]{
		memos:   [2]*sync.Map{{}, {}},
		maxSize: maxSize,
	}
}

func (s *dualMapStore[V]) Load(key any) (V, bool) {
	headIdx := s.headIdx
	v, ok := s.memos[headIdx].Load(key)
	if !ok {
		v, ok = s.memos[1-headIdx].Load(key)
		if !ok {
			var zero V
			return zero, false
		}
	}
	return v.(V), true
}

func (s *dualMapStore[V]) Store(key any, value V) {
	if swapped := s.size.CompareAndSwap(s.maxSize, 0); swapped {
		s.headIdx = 1 - s.headIdx
		s.memos[s.headIdx] = &sync.Map{}
	}
	s.memos[s.headIdx].Store(key, value)
	s.size.Add(1)
}
