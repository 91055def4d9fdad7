package utils

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	InfoLogger  *logrus.Logger
	ErrorLogger *logrus.Logger
)

func init() {
	// Loggers must be usable before main configures them (tests, init order).
	InitLogger("info", "text")
}

// InitLogger configures InfoLogger (stdout) and ErrorLogger (stderr).
// format is "json" or "text"; an unknown level falls back to info.
func InitLogger(level, format string) {
	InfoLogger = newLogger(os.Stdout, level, format)
	ErrorLogger = newLogger(os.Stderr, level, format)
}

// SetOutput redirects both loggers, mostly for tests.
func SetOutput(w io.Writer) {
	InfoLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
}

func newLogger(out io.Writer, level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return logger
}
