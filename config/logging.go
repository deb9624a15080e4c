package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogWriter is the writer used for application and database logs.
var LogWriter io.Writer = os.Stdout

// Log is the application logger.
var Log = logrus.New()

// LogFilePath returns the path to the backend log file.
func LogFilePath() string {
	return filepath.Join("logs", "beamtime-api.log")
}

// InitLogging prepares the log file and points Log at stdout plus the file.
func InitLogging() (*os.File, io.Writer) {
	configureFormatter()

	logPath := filepath.Dir(LogFilePath())
	if err := os.MkdirAll(logPath, os.ModePerm); err != nil {
		Log.WithError(err).Warn("Failed to create logs directory")
	}

	logFile, err := os.OpenFile(LogFilePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Log.WithError(err).Warn("Failed to open log file")
		LogWriter = os.Stdout
		Log.SetOutput(LogWriter)
		return nil, LogWriter
	}

	LogWriter = io.MultiWriter(os.Stdout, logFile)
	Log.SetOutput(LogWriter)
	return logFile, LogWriter
}

func configureFormatter() {
	format := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if format == "" && strings.ToLower(os.Getenv("ENVIRONMENT")) == "production" {
		format = "json"
	}

	if format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if lvl, err := logrus.ParseLevel(Getenv("LOG_LEVEL", "info")); err == nil {
		Log.SetLevel(lvl)
	}
}
