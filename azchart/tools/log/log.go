// Package log is a thin re-export of logrus, so the rest of the module
// shares one logging surface.
package log

import "github.com/sirupsen/logrus"

type (
	Level         = logrus.Level
	Fields        = logrus.Fields
	Formatter     = logrus.Formatter
	TextFormatter = logrus.TextFormatter
)

const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
)

func SetFormatter(formatter Formatter) { logrus.SetFormatter(formatter) }
func SetLevel(level Level)             { logrus.SetLevel(level) }

func WithFields(fields Fields) *logrus.Entry { return logrus.WithFields(fields) }

func Debug(args ...interface{})                 { logrus.Debug(args...) }
func Debugf(format string, args ...interface{}) { logrus.Debugf(format, args...) }
func Info(args ...interface{})                  { logrus.Info(args...) }
func Infof(format string, args ...interface{})  { logrus.Infof(format, args...) }
func Warn(args ...interface{})                  { logrus.Warn(args...) }
func Warnf(format string, args ...interface{})  { logrus.Warnf(format, args...) }
func Error(args ...interface{})                 { logrus.Error(args...) }
func Errorf(format string, args ...interface{}) { logrus.Errorf(format, args...) }
func Fatal(args ...interface{})                 { logrus.Fatal(args...) }
func Fatalf(format string, args ...interface{}) { logrus.Fatalf(format, args...) }
