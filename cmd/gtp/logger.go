package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// newLogger creates the shared logger, level comes from LOG_LEVEL and defaults to info.
func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid LOG_LEVEL '%s', defaulting to 'info'\n", level)
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	return log
}
