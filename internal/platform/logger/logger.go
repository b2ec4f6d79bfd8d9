// Copyright (c) 2026 Folio. All rights reserved.

// Package logger builds the process-wide slog JSON logger.
//
// Records always go to stdout. When a file is configured they are also
// written to a size-rotated file managed by lumberjack.
package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures [New].
type Options struct {
	// App is attached to every record as the "app" attribute.
	App   string
	Debug bool

	// File enables the rotating file sink. Empty disables it.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// New returns the logger and a close function for the file sink.
// Close is a no-op when no file is configured.
func New(stdout io.Writer, options Options) (*slog.Logger, func() error) {
	level := slog.LevelInfo
	if options.Debug {
		level = slog.LevelDebug
	}

	if stdout == nil {
		stdout = os.Stdout
	}

	sink := stdout
	closeSink := func() error { return nil }

	if options.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   options.File,
			MaxSize:    options.MaxSizeMB,
			MaxBackups: options.MaxBackups,
			MaxAge:     options.MaxAgeDays,
			Compress:   options.Compress,
		}
		sink = io.MultiWriter(stdout, rotating)
		closeSink = rotating.Close
	}

	log := slog.New(slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: level}))
	if options.App != "" {
		log = log.With(slog.String("app", options.App))
	}

	return log, closeSink
}
