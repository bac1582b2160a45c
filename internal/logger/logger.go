package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Logger wraps slog with package/function scoping so call sites can do
// logger.New("pkg").Function("fn") and keep log-and-return a single call.
type Logger struct {
	log *slog.Logger
}

func New(pkg string) Logger {
	return Logger{
		log: slog.New(slog.NewTextHandler(os.Stdout, nil)).With("package", pkg),
	}
}

func (l Logger) Function(name string) Logger {
	return Logger{log: l.log.With("function", name)}
}

func (l Logger) File(name string) Logger {
	return Logger{log: l.log.With("file", name)}
}

func (l Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

// Er logs an error without returning one.
func (l Logger) Er(msg string, err error, args ...any) {
	l.log.Error(msg, append([]any{"error", err}, args...)...)
}

// ErMsg logs an error-level message without returning one.
func (l Logger) ErMsg(msg string, args ...any) {
	l.log.Error(msg, args...)
}

// Err logs and returns the error wrapped with msg.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.log.Error(msg, append([]any{"error", err}, args...)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs and returns a new error built from msg.
func (l Logger) Error(msg string, args ...any) error {
	l.log.Error(msg, args...)
	return errors.New(msg)
}

// ErrMsg is Error without structured args.
func (l Logger) ErrMsg(msg string) error {
	l.log.Error(msg)
	return errors.New(msg)
}
