// Package callback defines the extension contract between a prompt host
// and user-supplied customization code.
//
// The Callbacks interface is the full capability set: syntax
// highlighting, completion, signature help, key transforms, commit
// confirmation, and input reformatting. Every operation is cancellable
// through its context and receives its own snapshot of the prompt text
// and caret, so implementations never share mutable state with the host.
//
// Default provides a usable implementation of every operation; hosts and
// extensions embed it and override only what they need.
package callback
