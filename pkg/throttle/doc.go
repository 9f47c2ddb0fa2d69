// Package throttle provides a leading-edge call-rate wrapper: the first
// call of each cooldown window executes immediately and synchronously,
// while later calls inside the window are dropped without queuing.
//
// Throttling suits handlers where the first event of a burst matters and
// repeats add nothing, such as a submit button or a scroll-position
// reporter:
//
//	submit := throttle.Func(func(form Order) {
//	    api.Place(form)
//	}, time.Second)
//
//	submit(order) // fires
//	submit(order) // dropped, cooldown active
//
// The distinction from package debounce is deliberate and exact: debounce
// is trailing-edge with reset-on-activity (last call of a burst wins,
// after the quiet period); throttle is leading-edge with a fixed cooldown
// (first call wins, the rest of the burst is discarded).
package throttle
