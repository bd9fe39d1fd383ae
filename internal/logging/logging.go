// Package logging provides the component logger shared by both binaries.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Logger logs printf-style messages tagged with the emitting component.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// LogrusLogger writes through logrus with the component as a field.
type LogrusLogger struct {
	log *logrus.Logger
}

// Options configures New.
type Options struct {
	Debug bool
	JSON  bool
}

// New returns a logger writing to w. Without Debug only errors are emitted.
func New(w io.Writer, opts Options) *LogrusLogger {
	log := logrus.New()
	log.SetOutput(w)
	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}
	if opts.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &LogrusLogger{log: log}
}

// SetLevel adjusts the minimum level, e.g. logrus.InfoLevel for request logs.
func (l *LogrusLogger) SetLevel(level logrus.Level) { l.log.SetLevel(level) }

func (l *LogrusLogger) Infof(component string, format string, args ...interface{}) {
	l.log.WithField("component", component).Info(fmt.Sprintf(format, args...))
}

func (l *LogrusLogger) Errorf(component string, format string, args ...interface{}) {
	l.log.WithField("component", component).Error(fmt.Sprintf(format, args...))
}
