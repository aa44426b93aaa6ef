package main

import (
	"context"
	"log/slog"

	"github.com/sirupsen/logrus"
)

// logrusHandler forwards slog records from library code to the CLI's
// logrus logger so everything lands in one place.
type logrusHandler struct {
	attrs []slog.Attr
}

func slogFromLogrus() *slog.Logger {
	return slog.New(logrusHandler{})
}

func (h logrusHandler) Enabled(_ context.Context, level slog.Level) bool {
	return log.IsLevelEnabled(logrusLevel(level))
}

func (h logrusHandler) Handle(_ context.Context, record slog.Record) error {
	fields := logrus.Fields{}
	for _, attr := range h.attrs {
		fields[attr.Key] = attr.Value.Any()
	}
	record.Attrs(func(attr slog.Attr) bool {
		fields[attr.Key] = attr.Value.Any()
		return true
	})
	log.WithFields(fields).Log(logrusLevel(record.Level), record.Message)
	return nil
}

func (h logrusHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return logrusHandler{attrs: merged}
}

func (h logrusHandler) WithGroup(name string) slog.Handler {
	return h
}

func logrusLevel(level slog.Level) logrus.Level {
	switch {
	case level >= slog.LevelError:
		return logrus.ErrorLevel
	case level >= slog.LevelWarn:
		return logrus.WarnLevel
	case level >= slog.LevelInfo:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}
