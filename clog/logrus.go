package clog

import "github.com/sirupsen/logrus"

// logrusProvider adapts a *logrus.Logger to LogProvider, mapping Critical to
// logrus's Fatal-less Error level (bnr has no fatal notion of its own) and
// Debug/Warn/Error onto their logrus counterparts.
type logrusProvider struct {
	l *logrus.Logger
}

var _ LogProvider = logrusProvider{}

// NewLogrusLogger builds a Clog backed by logrus, leveled at the given
// level name (parsed with logrus.ParseLevel; an unrecognised name falls
// back to logrus.InfoLevel rather than failing construction). Output is
// enabled immediately, unlike NewLogger's plain default.
func NewLogrusLogger(level string) Clog {
	l := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	c := Clog{provider: logrusProvider{l: l}}
	c.LogMode(true)
	return c
}

func (p logrusProvider) Critical(format string, v ...interface{}) {
	p.l.Errorf("[CRITICAL] "+format, v...)
}

func (p logrusProvider) Error(format string, v ...interface{}) {
	p.l.Errorf(format, v...)
}

func (p logrusProvider) Warn(format string, v ...interface{}) {
	p.l.Warnf(format, v...)
}

func (p logrusProvider) Debug(format string, v ...interface{}) {
	p.l.Debugf(format, v...)
}
