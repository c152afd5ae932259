// Package engine drives the editing loop around the callback contract.
//
// A Session owns the prompt text and caret and, for each key press,
// performs the host side of the contract: transform the press, consult
// the dispatch table, fall back to default editing, and run the
// completion and highlighting flows. Highlight requests are superseded:
// when the text changes while a request is pending, the stale request
// is cancelled and its result discarded.
package engine
