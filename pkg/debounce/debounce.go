package debounce

import (
	"sync"
	"time"
)

// Debouncer wraps a function so that it only executes after a quiet period
// with no further calls. Each Call resets the pending timer, so a steady
// stream of calls keeps deferring execution; when the stream stops for the
// configured delay, the wrapped function fires once with the argument from
// the most recent call.
//
// A Debouncer owns at most one pending timer at a time and is safe for
// concurrent use. Execution happens on the timer's goroutine,
// fire-and-forget; there is no way to observe a return value or to flush
// a pending call early.
type Debouncer[T any] struct {
	mu    sync.Mutex
	timer *time.Timer
	fn    func(T)
	delay time.Duration
}

// New returns a Debouncer that defers fn until delay has elapsed without
// another Call. A zero delay still defers execution to the timer goroutine
// rather than running fn synchronously. Panics if fn is nil.
func New[T any](fn func(T), delay time.Duration) *Debouncer[T] {
	if fn == nil {
		panic("debounce: fn must not be nil")
	}
	if delay < 0 {
		delay = 0
	}

	return &Debouncer[T]{fn: fn, delay: delay}
}

// Call cancels any pending invocation and schedules a new one with arg.
// The argument of the last Call before the quiet period wins.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fn(arg)
	})
}

// Func wraps fn in a new Debouncer and returns its Call method as a plain
// function, for drop-in use as an event handler.
func Func[T any](fn func(T), delay time.Duration) func(T) {
	return New(fn, delay).Call
}
