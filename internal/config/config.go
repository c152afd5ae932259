package config

import (
	"fmt"

	"github.com/dshills/promptkit/internal/dispatch"
	"github.com/dshills/promptkit/internal/key"
)

// Config is the full prompt configuration.
type Config struct {
	// LogLevel is the minimum level to log: debug, info, warn, error.
	LogLevel string `toml:"log_level" yaml:"log_level"`

	// Extension is the path to a Lua extension script, empty for none.
	Extension string `toml:"extension" yaml:"extension"`

	// Completion configures the completion heuristics.
	Completion CompletionConfig `toml:"completion" yaml:"completion"`

	// Bindings maps key chords to named actions, in dispatch order.
	Bindings []BindingSpec `toml:"binding" yaml:"bindings"`
}

// CompletionConfig configures the default completion heuristics.
type CompletionConfig struct {
	// ExtraWordRunes lists characters treated as word characters in
	// addition to letters, digits, and underscore.
	ExtraWordRunes string `toml:"extra_word_runes" yaml:"extra_word_runes"`
}

// BindingSpec is a declarative key binding.
type BindingSpec struct {
	// Keys is the key specification, e.g. "Ctrl+Enter" or "<C-s>".
	// A "*+" prefix makes the chord modifier-wildcard.
	Keys string `toml:"keys" yaml:"keys"`

	// Action names the handler the host registered for this binding.
	Action string `toml:"action" yaml:"action"`

	// Description documents the binding for help displays.
	Description string `toml:"description" yaml:"description"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		Bindings: []BindingSpec{
			{Keys: "Ctrl+Enter", Action: "submit", Description: "Submit the prompt"},
			{Keys: "Ctrl+D", Action: "quit", Description: "Quit without submitting"},
			{Keys: "F12", Action: "format", Description: "Reformat the input"},
		},
	}
}

// applyDefaults fills unset fields from the built-in configuration.
func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if len(c.Bindings) == 0 {
		c.Bindings = def.Bindings
	}
}

// Validate checks that every binding parses and names an action.
func (c Config) Validate() error {
	for i, b := range c.Bindings {
		if b.Action == "" {
			return fmt.Errorf("%w: binding %d (%q) has no action", ErrInvalidBinding, i, b.Keys)
		}
		if _, err := key.ParsePattern(b.Keys); err != nil {
			return fmt.Errorf("%w: binding %d: %v", ErrInvalidBinding, i, err)
		}
	}
	return nil
}

// Resolve turns the declarative bindings into a dispatch table using the
// host's action registry. Binding order is preserved; it is the dispatch
// order. Every action must be registered.
func (c Config) Resolve(actions map[string]dispatch.Handler) ([]dispatch.Binding, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	bindings := make([]dispatch.Binding, 0, len(c.Bindings))
	for _, b := range c.Bindings {
		h, ok := actions[b.Action]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, b.Action)
		}
		pat, err := key.ParsePattern(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBinding, err)
		}
		bindings = append(bindings, dispatch.Binding{
			Pattern:     pat,
			Handler:     h,
			Description: b.Description,
		})
	}
	return bindings, nil
}
