// Package logging carries the engine's structured log records over log/slog.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Field is one key/value pair attached to a log record.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field        { return Field{Key: key, Value: value} }
func Int(key string, value int) Field       { return Field{Key: key, Value: value} }
func Float(key string, value float64) Field { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field     { return Field{Key: key, Value: value} }

// Err records err under the "error" key as its message text.
func Err(err error) Field { return Field{Key: "error", Value: err.Error()} }

// Logger is what the engine, tracing setup and CLI log through.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Config mirrors the logging section of the zodiacal config file.
type Config struct {
	Level  string
	Format string    // "json" or "text"
	Output io.Writer // nil means stderr
}

var levels = map[string]slog.Level{
	"":        slog.LevelInfo,
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// ParseLevel maps a level name to a slog level. Unknown names mean info.
func ParseLevel(level string) slog.Level {
	if l, ok := levels[strings.ToLower(level)]; ok {
		return l
	}
	return slog.LevelInfo
}

// ValidLevel reports whether ParseLevel knows level by name.
func ValidLevel(level string) bool {
	_, ok := levels[strings.ToLower(level)]
	return ok
}

// New builds a slog-backed Logger from cfg.
func New(cfg Config) Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler = slog.NewTextHandler(out, opts)
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, opts)
	}
	return handlerLogger{l: slog.New(h)}
}

// Noop returns a Logger that discards everything.
func Noop() Logger { return noop{} }

type handlerLogger struct {
	l *slog.Logger
}

func (h handlerLogger) log(ctx context.Context, level slog.Level, msg string, fields []Field) {
	if !h.l.Enabled(ctx, level) {
		return
	}
	h.l.LogAttrs(ctx, level, msg, attrs(fields)...)
}

func (h handlerLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	h.log(ctx, slog.LevelDebug, msg, fields)
}

func (h handlerLogger) Info(ctx context.Context, msg string, fields ...Field) {
	h.log(ctx, slog.LevelInfo, msg, fields)
}

func (h handlerLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	h.log(ctx, slog.LevelWarn, msg, fields)
}

func (h handlerLogger) Error(ctx context.Context, msg string, fields ...Field) {
	h.log(ctx, slog.LevelError, msg, fields)
}

func (h handlerLogger) With(fields ...Field) Logger {
	as := attrs(fields)
	args := make([]any, len(as))
	for i, a := range as {
		args[i] = a
	}
	return handlerLogger{l: h.l.With(args...)}
}

func attrs(fields []Field) []slog.Attr {
	out := make([]slog.Attr, len(fields))
	for i, f := range fields {
		out[i] = slog.Any(f.Key, f.Value)
	}
	return out
}

type noop struct{}

func (noop) Debug(context.Context, string, ...Field) {}
func (noop) Info(context.Context, string, ...Field)  {}
func (noop) Warn(context.Context, string, ...Field)  {}
func (noop) Error(context.Context, string, ...Field) {}
func (noop) With(...Field) Logger                    { return noop{} }
