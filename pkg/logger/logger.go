package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	log *logrus.Logger
	mu  sync.RWMutex
)

// Init configures the shared logger. Unknown levels fall back to info.
// It may be called again at any time to replace the logger.
func Init(level string) {
	l := newLogger(level)

	mu.Lock()
	log = l
	mu.Unlock()
}

func newLogger(level string) *logrus.Logger {
	l := logrus.New()

	// Set output to stdout
	l.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	l.SetLevel(parsed)

	// Set formatter for structured logging
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// GetLogger returns the configured logger instance, initialising it from LOG_LEVEL on first use
func GetLogger() *logrus.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = newLogger(os.Getenv("LOG_LEVEL"))
	}
	return log
}

// WithField adds a field to the logger
func WithField(key string, value interface{}) *logrus.Entry {
	return GetLogger().WithField(key, value)
}

// WithFields adds multiple fields to the logger
func WithFields(fields logrus.Fields) *logrus.Entry {
	return GetLogger().WithFields(fields)
}

// WithError adds an error field to the logger
func WithError(err error) *logrus.Entry {
	return GetLogger().WithError(err)
}

func Debugf(format string, args ...interface{}) {
	GetLogger().Debugf(format, args...)
}

func Info(args ...interface{}) {
	GetLogger().Info(args...)
}

func Infof(format string, args ...interface{}) {
	GetLogger().Infof(format, args...)
}

func Warn(args ...interface{}) {
	GetLogger().Warn(args...)
}

// Fatalf logs a formatted fatal message and exits
func Fatalf(format string, args ...interface{}) {
	GetLogger().Fatalf(format, args...)
}
