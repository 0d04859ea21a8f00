// Package logging holds the minimal logger contract used across lattice. Any *log.Logger
// satisfies it.
package logging

import "log"

type Logger interface {
	Printf(format string, v ...any)
}

// Default returns the standard library's default logger.
func Default() Logger {
	return log.Default()
}

// Nop discards everything.
type Nop struct{}

func (Nop) Printf(string, ...any) {}

// OrDefault returns the logger itself, or Default() if it's nil.
func OrDefault(logger Logger) Logger {
	if logger == nil {
		return Default()
	}

	return logger
}
