// Package log provides the small logging surface the rest of CppGB
// depends on, backed by logrus. Callers depend on the Logger interface,
// not on logrus directly, so the backend can be swapped in tests.
package log

import "github.com/sirupsen/logrus"

// Logger is the logging surface used throughout the emulator core and
// the host adapter.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	l *logrus.Logger
}

// New returns a Logger backed by a logrus.Logger configured for plain,
// timestamp-free text output.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
	}
	return &logger{l: l}
}

func (lg *logger) Infof(format string, args ...interface{})  { lg.l.Infof(format, args...) }
func (lg *logger) Warnf(format string, args ...interface{})  { lg.l.Warnf(format, args...) }
func (lg *logger) Errorf(format string, args ...interface{}) { lg.l.Errorf(format, args...) }
func (lg *logger) Debugf(format string, args ...interface{}) { lg.l.Debugf(format, args...) }
