// Package hlog is the server core's logging facade: a small level-gated
// interface backed by the standard library's log.Logger, in the shape of
// the teacher's hlog package but trimmed to the four levels the
// connection loop actually uses.
package hlog

import (
	"io"
	"log"
	"os"
)

// Level filters which calls reach the underlying writer.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelSilent
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "SILENT"
	}
}

// FullLogger is the logging surface the server core depends on.
type FullLogger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	SetLevel(lv Level)
	SetOutput(w io.Writer)
}

type defaultLogger struct {
	std   *log.Logger
	level Level
}

func (l *defaultLogger) logf(lv Level, format string, v ...interface{}) {
	if lv < l.level {
		return
	}
	l.std.Printf("["+lv.String()+"] "+format, v...)
}

func (l *defaultLogger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }
func (l *defaultLogger) Infof(format string, v ...interface{})  { l.logf(LevelInfo, format, v...) }
func (l *defaultLogger) Warnf(format string, v ...interface{})  { l.logf(LevelWarn, format, v...) }
func (l *defaultLogger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

func (l *defaultLogger) SetLevel(lv Level)   { l.level = lv }
func (l *defaultLogger) SetOutput(w io.Writer) { l.std.SetOutput(w) }

var logger FullLogger = &defaultLogger{
	std:   log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds),
	level: startupLevel(),
}

// DefaultLogger returns the process-wide logger used by the server core.
func DefaultLogger() FullLogger { return logger }

// SetLogger overrides the process-wide logger, mirroring the teacher's
// hlog.SetLogger. Not concurrency-safe; call before Server.Run.
func SetLogger(l FullLogger) { logger = l }

// SetLevel sets the level of the process-wide logger.
func SetLevel(lv Level) { logger.SetLevel(lv) }

// SetOutput redirects the process-wide logger's output.
func SetOutput(w io.Writer) { logger.SetOutput(w) }

func Debugf(format string, v ...interface{}) { logger.Debugf(format, v...) }
func Infof(format string, v ...interface{})  { logger.Infof(format, v...) }
func Warnf(format string, v ...interface{})  { logger.Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { logger.Errorf(format, v...) }
