package logger

import (
	"io"
	"log/slog"
	"os"
)

type settings struct {
	writer  io.Writer
	level   slog.Level
	json    bool
	appName string
}

// Option configures the logger factory.
type Option func(*settings)

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(s *settings) {
		s.level = level
	}
}

// WithWriter sets the output destination. Default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.writer = w
		}
	}
}

// WithJSONFormatter switches output to JSON regardless of preset.
func WithJSONFormatter() Option {
	return func(s *settings) {
		s.json = true
	}
}

// WithDevelopment configures text output at Debug level tagged with the app name.
func WithDevelopment(appName string) Option {
	return func(s *settings) {
		s.appName = appName
		s.level = slog.LevelDebug
		s.json = false
	}
}

// WithProduction configures JSON output at Info level tagged with the app name.
func WithProduction(appName string) Option {
	return func(s *settings) {
		s.appName = appName
		s.level = slog.LevelInfo
		s.json = true
	}
}

// New creates a slog.Logger from the given options.
func New(opts ...Option) *slog.Logger {
	s := settings{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&s)
	}

	handlerOpts := &slog.HandlerOptions{Level: s.level}

	var handler slog.Handler
	if s.json {
		handler = slog.NewJSONHandler(s.writer, handlerOpts)
	} else {
		handler = slog.NewTextHandler(s.writer, handlerOpts)
	}

	log := slog.New(handler)
	if s.appName != "" {
		log = log.With(slog.String("app", s.appName))
	}
	return log
}

// Discard returns a logger that drops all records. Useful as a default in
// middleware that accepts an optional logger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
