package engine

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// LogLevel controls logging verbosity.
type LogLevel int

const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLogLevel converts a string to a LogLevel. Unrecognized strings
// default to LogInfo.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "debug":
		return LogDebug
	case "info":
		return LogInfo
	case "warn", "warning":
		return LogWarn
	case "error":
		return LogError
	default:
		return LogInfo
	}
}

// Logger provides leveled logging for the session and its callbacks.
// All methods are safe for concurrent use. A nil Logger discards
// everything.
type Logger struct {
	mu       sync.Mutex
	level    LogLevel
	output   io.Writer
	prefix   string
	disabled bool
}

// NewLogger creates a logger writing to output at the given level.
// A nil output defaults to stderr.
func NewLogger(output io.Writer, level LogLevel) *Logger {
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:  level,
		output: output,
	}
}

// WithPrefix returns a logger that prepends [prefix] to each message.
func (l *Logger) WithPrefix(prefix string) *Logger {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{
		level:    l.level,
		output:   l.output,
		prefix:   prefix,
		disabled: l.disabled,
	}
}

// SetLevel changes the minimum level that is logged.
func (l *Logger) SetLevel(level LogLevel) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// SetOutput changes the log destination.
func (l *Logger) SetOutput(output io.Writer) {
	if l == nil || output == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = output
}

// Disable suppresses all output until Enable is called.
func (l *Logger) Disable() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = true
}

// Enable resumes output after Disable.
func (l *Logger) Enable() {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.disabled = false
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...any) {
	l.log(LogDebug, format, args...)
}

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) {
	l.log(LogInfo, format, args...)
}

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.log(LogWarn, format, args...)
}

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) {
	l.log(LogError, format, args...)
}

func (l *Logger) log(level LogLevel, format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.disabled || level < l.level {
		return
	}

	msg := fmt.Sprintf(format, args...)
	ts := time.Now().Format("2006-01-02T15:04:05.000")
	if l.prefix != "" {
		fmt.Fprintf(l.output, "%s [%s] [%s] %s\n", ts, level, l.prefix, msg)
	} else {
		fmt.Fprintf(l.output, "%s [%s] %s\n", ts, level, msg)
	}
}
