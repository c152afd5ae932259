package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/dispatch"
	"github.com/dshills/promptkit/internal/key"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

const tomlConfig = `
log_level = "debug"
extension = "ext.lua"

[completion]
extra_word_runes = "-"

[[binding]]
keys = "Ctrl+Enter"
action = "submit"
description = "Submit"

[[binding]]
keys = "*+Tab"
action = "complete"
`

const yamlConfig = `
log_level: debug
extension: ext.lua
completion:
  extra_word_runes: "-"
bindings:
  - keys: Ctrl+Enter
    action: submit
    description: Submit
  - keys: "*+Tab"
    action: complete
`

func TestLoadTOMLAndYAMLAgree(t *testing.T) {
	tomlPath := writeFile(t, "prompt.toml", tomlConfig)
	yamlPath := writeFile(t, "prompt.yaml", yamlConfig)

	fromTOML, err := Load(tomlPath)
	if err != nil {
		t.Fatalf("Load(toml) error: %v", err)
	}
	fromYAML, err := Load(yamlPath)
	if err != nil {
		t.Fatalf("Load(yaml) error: %v", err)
	}

	for name, cfg := range map[string]Config{"toml": fromTOML, "yaml": fromYAML} {
		if cfg.LogLevel != "debug" {
			t.Errorf("%s: LogLevel = %q, want debug", name, cfg.LogLevel)
		}
		if cfg.Extension != "ext.lua" {
			t.Errorf("%s: Extension = %q, want ext.lua", name, cfg.Extension)
		}
		if cfg.Completion.ExtraWordRunes != "-" {
			t.Errorf("%s: ExtraWordRunes = %q, want -", name, cfg.Completion.ExtraWordRunes)
		}
		if len(cfg.Bindings) != 2 {
			t.Fatalf("%s: got %d bindings, want 2", name, len(cfg.Bindings))
		}
		if cfg.Bindings[0].Action != "submit" || cfg.Bindings[1].Keys != "*+Tab" {
			t.Errorf("%s: bindings = %+v", name, cfg.Bindings)
		}
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.LogLevel != "info" || len(cfg.Bindings) == 0 {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeFile(t, "prompt.ini", "[x]\n")
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Load error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoadInvalidBinding(t *testing.T) {
	path := writeFile(t, "prompt.toml", "[[binding]]\nkeys = \"Bogus+Q\"\naction = \"submit\"\n")
	if _, err := Load(path); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("Load error = %v, want ErrInvalidBinding", err)
	}
}

func TestValidateMissingAction(t *testing.T) {
	cfg := Config{Bindings: []BindingSpec{{Keys: "Tab"}}}
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidBinding) {
		t.Errorf("Validate error = %v, want ErrInvalidBinding", err)
	}
}

func TestResolve(t *testing.T) {
	noop := dispatch.Handler(func(ctx context.Context, text string, caret int) (callback.Result, error) {
		return callback.Continue(), nil
	})
	cfg := Config{Bindings: []BindingSpec{
		{Keys: "Ctrl+Enter", Action: "submit"},
		{Keys: "*+Tab", Action: "complete"},
	}}

	bindings, err := cfg.Resolve(map[string]dispatch.Handler{
		"submit":   noop,
		"complete": noop,
	})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("got %d bindings, want 2", len(bindings))
	}
	if !bindings[0].Pattern.Matches(key.NewSpecialEvent(key.KeyEnter, key.ModCtrl)) {
		t.Error("first binding does not match Ctrl+Enter")
	}
	if !bindings[1].Pattern.Matches(key.NewSpecialEvent(key.KeyTab, key.ModAlt)) {
		t.Error("wildcard binding does not match Alt+Tab")
	}
}

func TestResolveUnknownAction(t *testing.T) {
	cfg := Config{Bindings: []BindingSpec{{Keys: "Tab", Action: "mystery"}}}
	if _, err := cfg.Resolve(nil); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Resolve error = %v, want ErrUnknownAction", err)
	}
}
