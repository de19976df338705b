// Package logger wraps op/go-logging with a single console backend shared by
// the whole process.
package logger

import (
	"os"
	"strings"

	"github.com/op/go-logging"
)

const moduleName = "chirp"

var logger *logging.Logger

var format = logging.MustStringFormatter(
	`%{time:2006/01/02 15:04:05} %{level} - %{message}`,
)

// Init configures the console backend at the given level. Unknown level
// names fall back to INFO.
func Init(levelName string) {
	level, err := logging.LogLevel(strings.ToUpper(levelName))
	if err != nil {
		level = logging.INFO
	}

	newLogger := logging.MustGetLogger(moduleName)
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(level, moduleName)
	newLogger.SetBackend(leveled)

	logger = newLogger
}

func get() *logging.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}

func Debug(args ...any) {
	get().Debug(args...)
}

func Debugf(format string, args ...any) {
	get().Debugf(format, args...)
}

func Info(args ...any) {
	get().Info(args...)
}

func Infof(format string, args ...any) {
	get().Infof(format, args...)
}

func Warning(args ...any) {
	get().Warning(args...)
}

func Warningf(format string, args ...any) {
	get().Warningf(format, args...)
}

func Error(args ...any) {
	get().Error(args...)
}

func Errorf(format string, args ...any) {
	get().Errorf(format, args...)
}
