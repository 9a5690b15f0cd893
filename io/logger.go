package readyio

import (
	"fmt"
	stdio "io"
	"time"

	"github.com/fatih/color"
)

// LogLevel represents the severity level of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// LogFormat defines the output format for log messages.
type LogFormat int

const (
	LogFormatTagged  LogFormat = iota // [INFO] [WARN] ...
	LogFormatSymbols                  // ◆ ✓ ▲ ✗ ●
	LogFormatPlain                    // no prefix
)

// Logger provides leveled logging with customizable formatting, styled via
// the owning IOManager's color support.
type Logger struct {
	io           *IOManager
	format       LogFormat
	minLevel     LogLevel
	withTime     bool
	timeFormat   string
	errorsStderr bool
}

// NewLogger creates a logger bound to the given IOManager. By default it uses
// tagged prefixes, logs Info and above, and routes warnings and errors to Err.
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:           io,
		format:       LogFormatTagged,
		minLevel:     LevelInfo,
		errorsStderr: true,
		timeFormat:   "15:04:05",
	}
}

// WithFormat sets the log format and returns the logger for chaining.
func (l *Logger) WithFormat(format LogFormat) *Logger { l.format = format; return l }

// WithTimestamps enables a time prefix on every message.
func (l *Logger) WithTimestamps() *Logger { l.withTime = true; return l }

// MinLevel sets the lowest level that will be emitted.
func (l *Logger) MinLevel(level LogLevel) *Logger { l.minLevel = level; return l }

// ErrorsToStdout routes warnings and errors to Out instead of Err.
func (l *Logger) ErrorsToStdout() *Logger { l.errorsStderr = false; return l }

// Debugf logs a debug message.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Infof logs an informational message.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Successf logs a success message.
func (l *Logger) Successf(format string, args ...any) { l.log(LevelSuccess, format, args...) }

// Warningf logs a warning message.
func (l *Logger) Warningf(format string, args ...any) { l.log(LevelWarning, format, args...) }

// Errorf logs an error message.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

func (l *Logger) log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	var w stdio.Writer = l.io.Out()
	if l.errorsStderr && level >= LevelWarning {
		w = l.io.Err()
	}

	msg := fmt.Sprintf(format, args...)
	prefix := l.prefix(level)
	if l.withTime {
		stamp := l.io.Faint(time.Now().Format(l.timeFormat))
		if prefix != "" {
			fmt.Fprintf(w, "%s %s %s\n", stamp, prefix, msg)
			return
		}
		fmt.Fprintf(w, "%s %s\n", stamp, msg)
		return
	}
	if prefix != "" {
		fmt.Fprintf(w, "%s %s\n", prefix, msg)
		return
	}
	fmt.Fprintln(w, msg)
}

func (l *Logger) prefix(level LogLevel) string {
	var raw string
	switch l.format {
	case LogFormatTagged:
		raw = "[" + level.String() + "]"
	case LogFormatSymbols:
		switch level {
		case LevelDebug:
			raw = "●"
		case LevelInfo:
			raw = "◆"
		case LevelSuccess:
			raw = "✓"
		case LevelWarning:
			raw = "▲"
		case LevelError:
			raw = "✗"
		}
	case LogFormatPlain:
		return ""
	}
	return l.io.sprint(raw, levelAttrs(level)...)
}

func levelAttrs(level LogLevel) []color.Attribute {
	switch level {
	case LevelDebug:
		return []color.Attribute{color.Faint}
	case LevelInfo:
		return []color.Attribute{color.FgCyan}
	case LevelSuccess:
		return []color.Attribute{color.FgGreen}
	case LevelWarning:
		return []color.Attribute{color.FgYellow}
	case LevelError:
		return []color.Attribute{color.FgRed}
	default:
		return nil
	}
}
