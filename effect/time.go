package effect

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

func NewTimeSpan(from, to time.Time) TimeSpan {
	return timespan.BetweenTimes(from, to)
}

// Now is a deferred clock read: the time is sampled when the effect is
// invoked, not when it is composed.
func Now() Effect[time.Time] {
	return Defer(time.Now)
}

// Measured pairs an effect's result with the wall-clock span its
// invocation covered.
type Measured[A any] struct {
	Value A
	Span  TimeSpan
}

// Measure wraps an effect so that invoking the wrapper also reports
// when the wrapped invocation started and ended. Composition itself
// reads no clock.
func Measure[A any](e Effect[A]) Effect[Measured[A]] {
	return Defer(func() Measured[A] {
		from := time.Now()
		v := e.Invoke()
		return Measured[A]{
			Value: v,
			Span:  timespan.BetweenTimes(from, time.Now()),
		}
	})
}
