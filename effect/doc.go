// Package effect provides a minimal deferred-effect monad for Go.
//
// An effect is a zero-argument computation that produces a value only
// when explicitly invoked. Building an effect, or composing effects
// with Bind and Then, performs no work at all; evaluation starts when,
// and only when, Invoke is called on the final composite.
//
// # What is an Effect?
//
// Anything that fits `func() A`:
//   - reading a clock, a file, or an environment
//   - mutating state captured in the closure
//   - a pure computation you want to postpone
//
// # Sequencing
//
// Bind chains two effects so that the first one's result is fed into a
// continuation that produces the second:
//
//	e := effect.Bind(readLine, func(s string) effect.Effect[int] {
//	    return effect.Defer(func() int { return len(s) })
//	})
//	n := e.Invoke() // readLine runs here, not before
//
// Then sequences two effects for ordering only, discarding the first
// result. Both guarantee strict left-to-right, exactly-once evaluation:
// the first effect completes before the continuation is applied, and
// the continuation is applied before the second effect runs.
//
// # What this package is not
//
// Deferred means "not yet called", not asynchronous. There is no
// scheduling, no cancellation, and no partial evaluation; an invoked
// chain runs to completion on the caller's goroutine. There is also no
// error channel: composition cannot fail, and panics raised by wrapped
// computations propagate to the invoker untouched.
package effect
