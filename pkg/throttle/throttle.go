package throttle

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttler wraps a function so that it executes at most once per cooldown
// window. The first call of a window runs the wrapped function synchronously
// on the caller's goroutine; every later call inside the window is dropped,
// not queued. This is the leading-edge counterpart to package debounce.
//
// The cooldown gate is a token bucket with capacity one, so a Throttler is
// safe for concurrent use and never lets two callers through the same
// window.
type Throttler[T any] struct {
	limiter *rate.Limiter
	fn      func(T)
}

// New returns a Throttler that allows fn to run at most once per limit.
// A non-positive limit disables throttling entirely. Panics if fn is nil.
func New[T any](fn func(T), limit time.Duration) *Throttler[T] {
	if fn == nil {
		panic("throttle: fn must not be nil")
	}

	r := rate.Inf
	if limit > 0 {
		r = rate.Every(limit)
	}

	return &Throttler[T]{
		limiter: rate.NewLimiter(r, 1),
		fn:      fn,
	}
}

// Call executes the wrapped function with arg if the cooldown window is
// open, and reports whether it fired. Calls during an active cooldown are
// silently dropped and return false.
func (t *Throttler[T]) Call(arg T) bool {
	if !t.limiter.Allow() {
		return false
	}

	t.fn(arg)
	return true
}

// Func wraps fn in a new Throttler and returns its Call method as a plain
// function that discards the fired report, for drop-in use as an event
// handler.
func Func[T any](fn func(T), limit time.Duration) func(T) {
	t := New(fn, limit)
	return func(arg T) {
		t.Call(arg)
	}
}
