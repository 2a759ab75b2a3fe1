package verify

import (
	"github.com/bokysan/base32768/internal/commands"
	"github.com/bokysan/base32768/internal/corpus"
	"github.com/bokysan/base32768/internal/logging"
	"github.com/bokysan/base32768/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command checks an encoder against fixture corpora. Without a directory it round-trips the encoder's
// built-in test patterns instead.
type Command struct {
	Encoder string `yaml:"encoder"  short:"e" long:"encoder"  env:"ENCODER"  description:"Encoder name or one-letter code" default:"Base32768"`
	Args    struct {
		Dirs []string `positional-arg-name:"DIR" description:"Directories holding .bin/.txt fixture pairs"`
	} `positional-args:"yes" yaml:"-"`
}

func NewCommand() *Command {
	return &Command{
		Encoder: commands.DefaultEncoder,
	}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	return c.Run()
}

// Run verifies every directory and reports all failures at once
func (c *Command) Run() error {
	e, err := commands.FindEncoder(c.Encoder)
	if err != nil {
		return err
	}

	if len(c.Args.Dirs) == 0 {
		patterns := e.TestPatterns()
		if err := corpus.RoundTrip(e, patterns); err != nil {
			return errors.Wrapf(err, "%v failed its test patterns", enc.Describe(e))
		}
		log.Infof("%v: %v test patterns ok", enc.Describe(e), len(patterns))
		return nil
	}

	var errs error
	for _, dir := range c.Args.Dirs {
		fixtures, err := corpus.Load(dir)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "could not load %v", dir))
			continue
		}
		if err := corpus.Verify(e, fixtures); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "%v failed in %v", enc.Describe(e), dir))
			continue
		}
		log.WithFields(log.Fields{
			"encoder":  enc.Describe(e),
			"fixtures": len(fixtures),
		}).Infof("Verified %v", dir)
	}

	return errs
}
