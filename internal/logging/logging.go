// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger and returns it.
func Setup(level, format string) *log.Logger {
	return configure(log.StandardLogger(), level, format, os.Stdout)
}

func configure(logger *log.Logger, level, format string, out io.Writer) *log.Logger {
	parsed, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)
	logger.SetOutput(out)

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	return logger
}
