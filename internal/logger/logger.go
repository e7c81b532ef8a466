// Package logger wraps zerolog with the small API the slider hosts use.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger.
type Options struct {
	Level         string // zerolog level name, "info" when empty
	HumanReadable bool   // console output instead of JSON lines
	Writer        io.Writer
}

// Logger is a levelled structured logger. A nil *Logger discards
// everything, so components may hold one without checking.
type Logger struct {
	base zerolog.Logger
}

// New creates a Logger from opts. It fails on an unknown level name.
func New(opts Options) (*Logger, error) {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	out := w
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = w
		console.TimeFormat = time.Kitchen
		out = console
	}

	return &Logger{base: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a Logger that writes nothing.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// With returns a derived logger that adds key=value to every entry.
func (l *Logger) With(key string, value any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Interface(key, value).Logger()}
}

// WithFields returns a derived logger that adds all fields to every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{base: ctx.Logger()}
}

// Level returns the minimum level that is written.
func (l *Logger) Level() string {
	if l == nil {
		return zerolog.Disabled.String()
	}
	return l.base.GetLevel().String()
}

func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Debugf is Debug with printf formatting. Arguments are not evaluated
// into a string unless debug is enabled.
func (l *Logger) Debugf(format string, args ...any) {
	if l == nil {
		return
	}
	l.base.Debug().Msgf(format, args...)
}

func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	ev := l.base.Error()
	if err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(msg)
}
