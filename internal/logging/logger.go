// Package logging builds the service's structured logger.
//
// Usage:
//
//	log := logging.New("billboard-api", "info", "json", os.Stdout)
//	log.WithField("cinema_id", id).Info("billboard served")
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logrus logger for a named service.  format is "json"
// (default) or "text"; an unknown level falls back to info.  A nil out
// writes to stdout.  The service field is embedded in every line.
func New(service, level, format string, out io.Writer) *logrus.Entry {
	log := logrus.New()
	if format == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)

	lvl, err := logrus.ParseLevel(level)
	if err != nil || level == "" {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log.WithField("service", service)
}

// Discard returns a logger that drops everything.  Used by tests and by
// components constructed without a logger.
func Discard() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}
