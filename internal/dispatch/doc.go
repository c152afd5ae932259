// Package dispatch routes physical key events to key-press handlers.
//
// A Dispatcher owns an ordered table of (pattern, handler) bindings. The
// table is built lazily on first lookup, at most once per dispatcher,
// and is immutable afterwards, so repeated lookups need no
// synchronization. Resolution is first-match-wins in registration order;
// a broader pattern registered earlier shadows narrower ones registered
// later, deliberately.
package dispatch
