// Package logging holds the logger shared by every lazily package.
package logging

import "github.com/rs/zerolog"

// Logger is silent until SetGlobalLogger installs a real one.
var Logger = zerolog.Nop()

// SetGlobalLogger replaces the logger used by every package in the module.
func SetGlobalLogger(logger zerolog.Logger) {
	Logger = logger
}

func Trace() *zerolog.Event { return Logger.Trace() }

func Debug() *zerolog.Event { return Logger.Debug() }
