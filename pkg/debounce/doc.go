// Package debounce provides a trailing-edge call-rate wrapper: execution is
// deferred until a quiet period follows the last call, and the arguments of
// the last call win.
//
// Debouncing suits handlers that should react once to a burst of events,
// such as persisting a search box value or recomputing a layout after a
// stream of resize events:
//
//	save := debounce.Func(func(query string) {
//	    index.Store(query)
//	}, 300*time.Millisecond)
//
//	save("g")
//	save("go")
//	save("gopher") // only this call reaches index.Store, 300ms later
//
// For the complementary leading-edge policy (first call of each window
// fires, later calls are dropped) see package throttle.
package debounce
