package effect

// Unit is the informationless result type for effects that are run for
// their side effects only.
type Unit = struct{}

// Effect is a deferred zero-argument computation producing A.
// Nothing happens until Invoke is called; an Effect that is never
// invoked performs no work and has no side effect.
type Effect[A any] interface {
	Invoke() A
}

// Fn adapts an ordinary closure into an Effect.
type Fn[A any] func() A

func (f Fn[A]) Invoke() A { return f() }

// Defer wraps a closure as an Effect. It is the usual way to build a
// leaf effect; the closure runs each time the effect is invoked.
func Defer[A any](f func() A) Effect[A] {
	return Fn[A](f)
}

// Of lifts an already-computed value into an Effect that simply
// returns it on every invocation.
func Of[A any](a A) Effect[A] {
	return Defer(func() A { return a })
}

// boundEffect is the composite produced by Bind: a first effect plus
// the continuation that builds the second one from its result.
type boundEffect[A, B any] struct {
	first Effect[A]
	cont  func(A) Effect[B]
}

// Invoke evaluates the chain: the first effect runs to completion,
// its result is handed to the continuation, and the effect the
// continuation returns is invoked in turn. Each step happens exactly
// once, synchronously, in that order.
func (be boundEffect[A, B]) Invoke() B {
	a := be.first.Invoke()
	return be.cont(a).Invoke()
}

// Bind sequentially composes two effects, passing the output of the
// first to the continuation that produces the second. Composition is
// pure bookkeeping: neither ingredient runs until the returned effect
// is invoked. The returned effect is itself an ordinary Effect and can
// be the operand of further Binds.
func Bind[A, B any](first Effect[A], cont func(A) Effect[B]) Effect[B] {
	return boundEffect[A, B]{first: first, cont: cont}
}

// constResolver wraps a pre-built effect so it can stand in for a
// continuation that ignores its input.
type constResolver[A, B any] struct {
	second Effect[B]
}

func (cr constResolver[A, B]) resolve(_ A) Effect[B] {
	return cr.second
}

// Then sequences two effects for their ordering only: the first runs,
// its result is discarded, then the second runs and its result becomes
// the composite's result. Equivalent to Bind with a continuation that
// ignores its argument.
func Then[A, B any](first Effect[A], second Effect[B]) Effect[B] {
	return Bind(first, constResolver[A, B]{second: second}.resolve)
}

// Map transforms the result of an effect with a pure function, without
// triggering evaluation.
func Map[A, B any](e Effect[A], f func(A) B) Effect[B] {
	return Bind(e, func(a A) Effect[B] {
		return Defer(func() B { return f(a) })
	})
}
