package logging

import (
	"github.com/sirupsen/logrus"
)

// NewJSONLogFormatter creates the formatter used with `--log-format json`. Field names follow the ones
// used by log shippers, so the output can be ingested without remapping.
func NewJSONLogFormatter() *logrus.JSONFormatter {
	return &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "@level",
			logrus.FieldKeyMsg:   "message",
			logrus.FieldKeyFunc:  "@caller",
		},
	}
}

// NewTextLogFormatter creates the formatter used with `--log-format text`. Color is one of the
// `--log-color` choices; `auto` leaves the decision to logrus, which checks if the output is a terminal.
func NewTextLogFormatter(color string, fullTimestamp bool) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		ForceColors:   color == "yes" || color == "true" || color == "1",
		DisableColors: color == "no" || color == "false" || color == "0",
		FullTimestamp: fullTimestamp,
	}
}
