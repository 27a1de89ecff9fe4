// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/pion/logging"
)

// charmLeveledLogger adapts a *charmlog.Logger to pion/logging's
// LeveledLogger so the CLI can hand the same engine options
// (WithLog/WithLoggerFactory) the library itself uses, with a prettier
// console logger in place of pion's plain default.
type charmLeveledLogger struct {
	l *charmlog.Logger
}

func (c *charmLeveledLogger) Trace(msg string)                          { c.l.Debug(msg) }
func (c *charmLeveledLogger) Tracef(format string, args ...interface{}) { c.l.Debugf(format, args...) }
func (c *charmLeveledLogger) Debug(msg string)                          { c.l.Debug(msg) }
func (c *charmLeveledLogger) Debugf(format string, args ...interface{}) { c.l.Debugf(format, args...) }
func (c *charmLeveledLogger) Info(msg string)                           { c.l.Info(msg) }
func (c *charmLeveledLogger) Infof(format string, args ...interface{})  { c.l.Infof(format, args...) }
func (c *charmLeveledLogger) Warn(msg string)                           { c.l.Warn(msg) }
func (c *charmLeveledLogger) Warnf(format string, args ...interface{})  { c.l.Warnf(format, args...) }
func (c *charmLeveledLogger) Error(msg string)                          { c.l.Error(msg) }
func (c *charmLeveledLogger) Errorf(format string, args ...interface{}) { c.l.Errorf(format, args...) }

// charmLoggerFactory implements logging.LoggerFactory by handing out
// scope-named charmLeveledLoggers that all share one level, configured from
// the WUPVIDEO_LOG_LEVEL environment variable per spec.md §6 ("Logging
// verbosity via an environment variable").
type charmLoggerFactory struct {
	level charmlog.Level
}

func newCharmLoggerFactory() *charmLoggerFactory {
	level := charmlog.InfoLevel
	switch os.Getenv("WUPVIDEO_LOG_LEVEL") {
	case "trace", "debug":
		level = charmlog.DebugLevel
	case "warn":
		level = charmlog.WarnLevel
	case "error":
		level = charmlog.ErrorLevel
	}
	return &charmLoggerFactory{level: level}
}

// NewLogger implements logging.LoggerFactory.
func (f *charmLoggerFactory) NewLogger(scope string) logging.LeveledLogger {
	l := charmlog.NewWithOptions(os.Stderr, charmlog.Options{Prefix: scope})
	l.SetLevel(f.level)
	return &charmLeveledLogger{l: l}
}
