package effect

import "sync"

// Once wraps an effect whose captured state may only be consumed once.
// The wrapped effect is released on first invocation; invoking again
// panics. Go has no move semantics, so the at-most-once discipline for
// consuming effects is enforced here at runtime instead of by the type
// system.
type Once[A any] struct {
	mu sync.Mutex
	e  Effect[A]
}

// OnceOf returns a single-use view of e.
func OnceOf[A any](e Effect[A]) *Once[A] {
	return &Once[A]{e: e}
}

func (o *Once[A]) Invoke() A {
	o.mu.Lock()
	e := o.e
	o.e = nil
	o.mu.Unlock()
	if e == nil {
		panic("effect: already consumed")
	}
	return e.Invoke()
}

// Consumed reports whether the effect has already been invoked.
func (o *Once[A]) Consumed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.e == nil
}
