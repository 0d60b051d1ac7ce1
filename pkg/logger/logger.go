// Package logger re-exports the immortal structured logger so call sites
// don't depend on the external module path directly.
package logger

import (
	ilogger "github.com/dezh-tech/immortal/pkg/logger"
)

type Config = ilogger.Config

func InitGlobalLogger(cfg *Config) {
	ilogger.InitGlobalLogger(cfg)
}

func Debug(msg string, args ...any) {
	ilogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	ilogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	ilogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	ilogger.Error(msg, args...)
}
