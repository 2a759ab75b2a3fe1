package logging

import (
	log "github.com/sirupsen/logrus"
)

// defaultLevel is used when no `-v` is given: the CLI output is the payload, so only errors are logged.
const defaultLevel = log.ErrorLevel

// SetVerbosity defines the verbosity level of the application. Every `-v` raises the level by one, from
// errors only up to trace.
func SetVerbosity(v []bool) {
	verbosity := defaultLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
