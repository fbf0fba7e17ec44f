package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a logger that writes to w.
//
// An unrecognized level is treated as "warn".
func newLogger(w io.Writer, level string, pretty bool) zerolog.Logger {
	lvl := zerolog.WarnLevel
	if l, err := zerolog.ParseLevel(level); err == nil && l != zerolog.NoLevel {
		lvl = l
	}

	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.DateTime}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
