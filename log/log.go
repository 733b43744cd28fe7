// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

// Package log is the diagnostic logger of datadog-ping. Diagnostics go to
// stderr so that stdout only carries the ping report.
package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"sync/atomic"
)

// LogLevel orders log verbosity, from LevelError (least) to LevelTrace (most)
type LogLevel int32

const (
	LevelError LogLevel = iota + 1
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

// ParseLogLevel converts a lowercase level name into a LogLevel
func ParseLogLevel(s string) (LogLevel, error) {
	switch s {
	case "error":
		return LevelError, nil
	case "warn":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	default:
		return 0, fmt.Errorf("invalid log level %q, expected one of error, warn, info, debug, trace", s)
	}
}

func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return fmt.Sprintf("LogLevel(%d)", int32(l))
	}
}

var (
	level  atomic.Int32
	output = stdlog.New(os.Stderr, "", stdlog.LstdFlags|stdlog.Lmicroseconds)
)

func init() {
	level.Store(int32(LevelWarn))
}

// SetLevel sets the most verbose level that gets printed
func SetLevel(l LogLevel) {
	level.Store(int32(l))
}

// GetLevel returns the current level
func GetLevel() LogLevel {
	return LogLevel(level.Load())
}

// SetVerbose is a shortcut: true enables every level, false goes back to warnings
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelTrace)
	} else {
		SetLevel(LevelWarn)
	}
}

// SetOutput redirects the default logger
func SetOutput(w io.Writer) {
	output.SetOutput(w)
}

func enabled(l LogLevel) bool {
	return l <= GetLevel()
}

// Logger lets an embedding program route diagnostics to its own logger.
// Nil funcs are skipped.
type Logger struct {
	Tracef    func(format string, args ...interface{})
	Debugf    func(format string, args ...interface{})
	Infof     func(format string, args ...interface{})
	Warnf     func(format string, args ...interface{}) error
	Errorf    func(format string, args ...interface{}) error
	TraceFunc func(func() string)
}

var logger = defaultLogger()

// SetLogger replaces the logger
func SetLogger(l Logger) {
	logger = l
}

// ResetLogger restores the stderr logger
func ResetLogger() {
	logger = defaultLogger()
}

func Tracef(format string, args ...interface{}) {
	if logger.Tracef != nil {
		logger.Tracef(format, args...)
	}
}

func Debugf(format string, args ...interface{}) {
	if logger.Debugf != nil {
		logger.Debugf(format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if logger.Infof != nil {
		logger.Infof(format, args...)
	}
}

func Warnf(format string, args ...interface{}) error {
	if logger.Warnf != nil {
		return logger.Warnf(format, args...)
	}
	return nil
}

func Errorf(format string, args ...interface{}) error {
	if logger.Errorf != nil {
		return logger.Errorf(format, args...)
	}
	return nil
}

// TraceFunc only builds the message when trace logging is on
func TraceFunc(logFunc func() string) {
	if logger.TraceFunc != nil {
		logger.TraceFunc(logFunc)
	}
}

func printf(l LogLevel, format string, args ...interface{}) {
	if enabled(l) {
		output.Printf("["+l.String()+"] "+format, args...)
	}
}

func defaultLogger() Logger {
	return Logger{
		Tracef: func(format string, args ...interface{}) {
			printf(LevelTrace, format, args...)
		},
		Debugf: func(format string, args ...interface{}) {
			printf(LevelDebug, format, args...)
		},
		Infof: func(format string, args ...interface{}) {
			printf(LevelInfo, format, args...)
		},
		Warnf: func(format string, args ...interface{}) error {
			printf(LevelWarn, format, args...)
			return fmt.Errorf(format, args...)
		},
		Errorf: func(format string, args ...interface{}) error {
			printf(LevelError, format, args...)
			return fmt.Errorf(format, args...)
		},
		TraceFunc: func(logFunc func() string) {
			if enabled(LevelTrace) {
				output.Print("[TRACE] " + logFunc())
			}
		},
	}
}
