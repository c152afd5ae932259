// Package term renders the prompt on a terminal via tcell and converts
// terminal key events into the engine's key events.
package term
