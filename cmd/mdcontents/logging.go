package main

import (
	"io"

	"github.com/sirupsen/logrus"
)

// newLogger creates the diagnostics logger. It starts at Warn so that only
// problems reach the terminal until configureLogger raises or lowers it.
func newLogger(w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "15:04:05.000"})
	log.SetLevel(logrus.WarnLevel)
	return log
}

// configureLogger applies --quiet and --verbose. Quiet wins when both are set.
func configureLogger(log *logrus.Logger, f commonFlags) {
	switch {
	case f.quiet:
		log.SetLevel(logrus.ErrorLevel)
	case f.verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
}

// maxprocsLogger adapts the logger to the printf-style hook automaxprocs expects.
func maxprocsLogger(log *logrus.Logger) func(string, ...interface{}) {
	return func(format string, args ...interface{}) {
		log.Debugf(format, args...)
	}
}
