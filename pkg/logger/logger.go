// Package logger creates module-scoped leveled loggers
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const defaultLogFormat = "%{color}%{time:15:04:05.000} %{level:.4s} %{module}:%{color:reset} %{message}"

// LogLevelFlag sets the verbosity of every logger the command creates
var LogLevelFlag = cli.StringFlag{
	Name:  "log-level",
	Usage: "Level of the logging (\"critical\", \"error\", \"warning\", \"notice\", \"info\", \"debug\")",
	Value: "info",
}

// NewLogger creates a logger for module writing to stderr. Unknown levels
// fall back to INFO.
func NewLogger(level string, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatted)

	logLevel, err := logging.LogLevel(strings.ToUpper(level))
	if err != nil {
		logLevel = logging.INFO
	}
	leveled.SetLevel(logLevel, module)
	log.SetBackend(leveled)
	return log
}

// ParseTime splits elapsed into whole hours, minutes and seconds
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	total := uint32(elapsed.Round(time.Second).Seconds())
	return total / 3600, total % 3600 / 60, total % 60
}
