// Package key defines physical key events, key-press patterns, and the
// key specification parser.
//
// An Event is a single physical key press (key code, character, modifier
// bitmask). A Press is an event paired with the character it will insert,
// which a callback may rewrite before the prompt processes it. A Pattern
// is a predicate over events used by the dispatch table.
package key
