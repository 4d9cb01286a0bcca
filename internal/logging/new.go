package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatText = "text"
	FormatJSON = "json"
)

// Options select and configure a backend.
type Options struct {
	Backend string // slog or zap
	Level   string // debug, info, warn or error
	Format  string // text or json
	Output  io.Writer
}

// New builds the Logger described by opts.
func New(opts Options) (Logger, error) {
	if opts.Output == nil {
		return nil, fmt.Errorf("logging: nil output")
	}

	switch strings.ToLower(opts.Backend) {
	case "", BackendSlog:
		level, err := slogLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		ho := &slog.HandlerOptions{Level: level}

		var h slog.Handler
		switch strings.ToLower(opts.Format) {
		case "", FormatText:
			h = slog.NewTextHandler(opts.Output, ho)
		case FormatJSON:
			h = slog.NewJSONHandler(opts.Output, ho)
		default:
			return nil, fmt.Errorf("logging: unknown format %q", opts.Format)
		}
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		level, err := zapcore.ParseLevel(defaultLevel(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}

		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder

		var enc zapcore.Encoder
		switch strings.ToLower(opts.Format) {
		case "", FormatText:
			enc = zapcore.NewConsoleEncoder(ec)
		case FormatJSON:
			enc = zapcore.NewJSONEncoder(ec)
		default:
			return nil, fmt.Errorf("logging: unknown format %q", opts.Format)
		}

		core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), level)
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("logging: unknown backend %q", opts.Backend)
	}
}

func defaultLevel(s string) string {
	if s == "" {
		return "info"
	}
	return strings.ToLower(s)
}

func slogLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(defaultLevel(s))); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}
	return l, nil
}
