// Package logging builds the logrus loggers shared by the game, the headless
// runner and the library packages.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a colored text logger writing to stderr at the given level.
func New(level string) (*logrus.Logger, error) {
	log := logrus.New()
	log.Out = os.Stderr
	log.Formatter = &logrus.TextFormatter{ForceColors: true, FullTimestamp: true}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	log.Level = lvl
	return log, nil
}

// Discard returns a logger that drops everything.
func Discard() logrus.FieldLogger {
	log := logrus.New()
	log.Out = io.Discard
	return log
}

// OrDiscard returns log, or a discarding logger when log is nil.
func OrDiscard(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return Discard()
	}
	return log
}
