package logging

import (
	"io"
	"os"
	"strings"

	"github.com/bokysan/base32768/internal/args"
	"github.com/bokysan/base32768/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger from the general options. The log always goes to
// stderr (or the log file), never to stdout, which carries the encoded or decoded payload.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(NewJSONLogFormatter())
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(NewTextLogFormatter(color, args.General.LogFullTimestamp))
	}
	log.SetOutput(os.Stderr)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := OpenLogFile(*args.General.LogFile)
		util.MustErrorNilOrExit(err)
		log.SetOutput(f)
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}

// OpenLogFile opens the file for appending, creating it if needed
func OpenLogFile(file string) (io.WriteCloser, error) {
	f, err := os.OpenFile(file, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return f, nil
}
