package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"ats-resume-optimizer/internal/domain"

	"github.com/sirupsen/logrus"
)

// AppLogger implements the domain.Logger interface on top of logrus
type AppLogger struct {
	entry *logrus.Entry
}

// NewLogger creates a new logger instance writing to stdout
func NewLogger(levelStr, format string) domain.Logger {
	return NewLoggerWithOutput(os.Stdout, levelStr, format)
}

// NewLoggerWithOutput creates a logger writing to out
func NewLoggerWithOutput(out io.Writer, levelStr, format string) domain.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(parseLogLevel(levelStr))

	if strings.EqualFold(format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05Z07:00"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return &AppLogger{entry: logrus.NewEntry(l)}
}

// Info logs an info message
func (l *AppLogger) Info(msg string, fields ...interface{}) {
	l.entry.WithFields(toFields(fields)).Info(msg)
}

// Error logs an error message
func (l *AppLogger) Error(msg string, err error, fields ...interface{}) {
	l.entry.WithFields(toFields(fields)).WithError(err).Error(msg)
}

// Debug logs a debug message
func (l *AppLogger) Debug(msg string, fields ...interface{}) {
	l.entry.WithFields(toFields(fields)).Debug(msg)
}

// Warn logs a warning message
func (l *AppLogger) Warn(msg string, fields ...interface{}) {
	l.entry.WithFields(toFields(fields)).Warn(msg)
}

// toFields pairs up key/value arguments. A trailing key without a value is dropped.
func toFields(fields []interface{}) logrus.Fields {
	out := make(logrus.Fields, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		out[fmt.Sprint(fields[i])] = fields[i+1]
	}
	return out
}

// parseLogLevel converts string log level to a logrus level
func parseLogLevel(levelStr string) logrus.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
