package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	shortstobenz "github.com/adventure705/shortstobenz3"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now     func() time.Time
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// NewPool creates the converter pool for a run.
	NewPool func(size int, opts ...shortstobenz.Option) Pool

	// SetMaxProcs adjusts GOMAXPROCS to the container quota. Nil skips it.
	SetMaxProcs func(logger zerolog.Logger)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:         time.Now,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Getenv:      os.Getenv,
		Environ:     os.Environ,
		NewPool:     newConverterPool,
		SetMaxProcs: setMaxProcs,
	}
}

// newLogger writes human-readable logs to w. Quiet keeps errors only,
// verbose adds per-lecture timing.
func newLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case quiet:
		level = zerolog.ErrorLevel
	case verbose:
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// setMaxProcs ignores the error: maxprocs.Set only fails on an invalid
// GOMAXPROCS variable, in which case the runtime default applies.
func setMaxProcs(logger zerolog.Logger) {
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		logger.Debug().Msg(fmt.Sprintf(format, args...))
	}))
}
