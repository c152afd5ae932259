// Package main is the entry point for the promptkit demo prompt.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"unicode"

	"github.com/dshills/promptkit/internal/callback"
	"github.com/dshills/promptkit/internal/config"
	"github.com/dshills/promptkit/internal/config/watcher"
	"github.com/dshills/promptkit/internal/dispatch"
	"github.com/dshills/promptkit/internal/engine"
	luaext "github.com/dshills/promptkit/internal/ext/lua"
	"github.com/dshills/promptkit/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	ConfigPath string
	LogPath    string
	Prompt     string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	logOut := io.Writer(io.Discard)
	if opts.LogPath != "" {
		f, err := os.OpenFile(opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logOut = f
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		return 1
	}

	log := engine.NewLogger(logOut, engine.ParseLogLevel(cfg.LogLevel))

	session := engine.NewSession(engine.WithLogger(log))
	defer session.Close()

	closeExt, err := applyConfig(session, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() { closeExt() }()

	screen, err := term.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	defer screen.Fini()

	// Config edits and shutdown signals both wake the event loop via an
	// interrupt; the flag tells the two apart.
	var reload atomic.Bool
	if opts.ConfigPath != "" {
		w, err := watcher.New(opts.ConfigPath, func() {
			reload.Store(true)
			screen.Interrupt()
		})
		if err != nil {
			log.Warn("config watch unavailable: %v", err)
		} else {
			defer w.Close()
		}
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		screen.Interrupt()
	}()

	text, submitted := eventLoop(session, screen, log, opts, &reload, &closeExt)
	screen.Fini()
	if submitted {
		fmt.Println(text)
	}
	return 0
}

// eventLoop runs the prompt until submission, quit, or interrupt. It
// returns the submitted text and whether anything was submitted.
func eventLoop(session *engine.Session, screen *term.Screen, log *engine.Logger, opts options, reload *atomic.Bool, closeExt *func()) (string, bool) {
	ctx := context.Background()
	status := ""

	for {
		items, selected := session.PopupItems()
		overloads, _ := session.Overloads()
		highlights, _ := session.Highlights()
		screen.Render(term.View{
			Prompt:     opts.Prompt,
			Text:       session.Text(),
			Caret:      session.Caret(),
			Highlights: highlights,
			Items:      items,
			Selected:   selected,
			Overloads:  overloads,
			Status:     status,
		})

		ev, ok := screen.PollKey()
		if !ok {
			if !reload.Swap(false) {
				return "", false
			}
			status = reloadConfig(session, log, opts, closeExt)
			continue
		}

		res, err := session.ProcessKey(ctx, ev)
		switch {
		case errors.Is(err, engine.ErrQuit):
			return "", false
		case err != nil:
			log.Error("process key: %v", err)
			status = err.Error()
		default:
			status = ""
		}
		if text, _, ok := res.Submission(); ok {
			return text, true
		}
	}
}

// reloadConfig re-reads the config file and swaps the session's
// bindings and callbacks in place. Failures keep the old setup.
func reloadConfig(session *engine.Session, log *engine.Logger, opts options, closeExt *func()) string {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		log.Error("config reload: %v", err)
		return fmt.Sprintf("config reload failed: %v", err)
	}
	log.SetLevel(engine.ParseLogLevel(cfg.LogLevel))

	oldClose := *closeExt
	newClose, err := applyConfig(session, cfg, log)
	if err != nil {
		log.Error("config reload: %v", err)
		return fmt.Sprintf("config reload failed: %v", err)
	}
	oldClose()
	*closeExt = newClose
	log.Info("config reloaded from %s", opts.ConfigPath)
	return "config reloaded"
}

// applyConfig builds callbacks and bindings from cfg and installs them
// on the session. It returns a cleanup for the extension, which is a
// no-op when no extension is configured.
func applyConfig(session *engine.Session, cfg config.Config, log *engine.Logger) (func(), error) {
	wordRune := wordPredicate(cfg.Completion.ExtraWordRunes)
	defaults := callback.Default{IsWordRune: wordRune}

	closeExt := func() {}
	if cfg.Extension != "" {
		ext, err := luaext.Load(cfg.Extension)
		if err != nil {
			return nil, fmt.Errorf("loading extension: %w", err)
		}
		ext.Default = defaults
		session.SetCallbacks(ext)
		closeExt = ext.Close
		log.Info("extension loaded from %s", cfg.Extension)
	} else {
		session.SetCallbacks(defaults)
	}

	bindings, err := cfg.Resolve(session.Actions())
	if err != nil {
		closeExt()
		return nil, fmt.Errorf("resolving bindings: %w", err)
	}
	session.SetDispatcher(dispatch.Static(bindings))
	return closeExt, nil
}

// wordPredicate extends the usual identifier characters with the
// configured extras.
func wordPredicate(extra string) func(rune) bool {
	if extra == "" {
		return nil
	}
	return func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || strings.ContainsRune(extra, r)
	}
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (TOML or YAML)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogPath, "log", "", "Path to log file (default: no logging)")
	flag.StringVar(&opts.Prompt, "prompt", "> ", "Prompt string")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "promptkit - extensible interactive prompt\n\n")
		fmt.Fprintf(os.Stderr, "Usage: promptkit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  promptkit                    Prompt with default bindings\n")
		fmt.Fprintf(os.Stderr, "  promptkit -c prompt.toml     Prompt configured from a file\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("promptkit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	return opts
}
