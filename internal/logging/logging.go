// Package logging wires zerolog for the whole process. Every component
// derives its own logger from the shared root via With().
package logging

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

var (
	once sync.Once
	root zerolog.Logger
)

func setup() {
	zerolog.TimeFieldFormat = timeFormat
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeFormat,
	}
	root = zerolog.New(out).With().Timestamp().Logger()
}

// GetLogger returns the shared root logger, creating it on first use.
func GetLogger() *zerolog.Logger {
	once.Do(setup)
	return &root
}

// GetLoggerConfigured returns the shared root logger and pins the global
// level on first use. Tests pass zerolog.Disabled to silence output.
func GetLoggerConfigured(level zerolog.Level) *zerolog.Logger {
	once.Do(func() {
		setup()
		zerolog.SetGlobalLevel(level)
	})
	return &root
}
