package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vitapredict/heart/internal/config"
)

// newLogger builds the slog logger described by cfg writing to console.
// When cfg.LogFile is set, records are also appended to a rotating file
// whose closer is returned. A nil console logs to the file only.
func newLogger(console io.Writer, cfg config.LoggerConfig) (*slog.Logger, io.Closer, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		out    io.Writer
		closer io.Closer
	)
	if cfg.LogFile != "" {
		file := rotatingFile(cfg.LogFile, cfg)
		closer = file
		out = file
		if console != nil {
			out = io.MultiWriter(console, file)
		}
	} else if console != nil {
		out = console
	} else {
		return slog.New(slog.DiscardHandler), nil, nil
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: cfg.AddSource}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	return slog.New(h), closer, nil
}

// rotatingFile opens path through lumberjack using the rotation limits of
// cfg.
func rotatingFile(path string, cfg config.LoggerConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}
