package config

import "errors"

// Configuration errors.
var (
	// ErrUnsupportedFormat indicates the file extension is not a known
	// configuration format.
	ErrUnsupportedFormat = errors.New("config: unsupported format")

	// ErrInvalidBinding indicates a key binding that cannot be parsed
	// or is missing an action.
	ErrInvalidBinding = errors.New("config: invalid binding")

	// ErrUnknownAction indicates a binding names an action no handler
	// is registered for.
	ErrUnknownAction = errors.New("config: unknown action")
)
