package encode

import (
	"unicode/utf8"

	"github.com/bokysan/base32768/internal/commands"
	"github.com/bokysan/base32768/internal/logging"
	"github.com/bokysan/base32768/internal/streams"
	"github.com/bokysan/base32768/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reads a binary payload and writes its text encoding
type Command struct {
	Encoder string `yaml:"encoder"  short:"e" long:"encoder"  env:"ENCODER"  description:"Encoder name or one-letter code" default:"Base32768"`
	Input   string `yaml:"input"    short:"i" long:"input"                   description:"Input file, '-' for stdin" default:"-"`
	Output  string `yaml:"output"   short:"o" long:"output"                  description:"Output file, '-' for stdout" default:"-"`
	Wrap    int    `yaml:"wrap"     short:"w" long:"wrap"     env:"WRAP"     description:"Wrap lines at this many terminal columns, 0 disables wrapping" default:"0"`
	Charset string `yaml:"charset"  short:"s" long:"charset"  env:"CHARSET"  description:"Charset of the output text" choice:"utf-8" choice:"utf-16le" choice:"utf-16be" choice:"scsu" default:"utf-8"`
}

func NewCommand() *Command {
	return &Command{
		Encoder: commands.DefaultEncoder,
		Input:   streams.StandardStream,
		Output:  streams.StandardStream,
		Charset: streams.CharsetUTF8,
	}
}

func (c *Command) Execute(args []string) error {
	logging.SetupLogging()
	return c.Run()
}

// Run encodes the input into the output
func (c *Command) Run() error {
	e, err := commands.FindEncoder(c.Encoder)
	if err != nil {
		return err
	}

	data, err := commands.ReadInput(c.Input)
	if err != nil {
		return err
	}

	text, err := e.Encode(data)
	if err != nil {
		return errors.Wrapf(err, "%v could not encode %v", enc.Describe(e), c.Input)
	}
	if c.Wrap > 0 {
		if enc.KeepsLineBreaks(e) {
			return errors.Errorf("%v output cannot be wrapped", enc.Describe(e))
		}
		text = streams.Wrap(text, c.Wrap)
	}

	out, err := streams.EncodeText(text, c.Charset)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"encoder":    enc.Describe(e),
		"bytes":      len(data),
		"characters": utf8.RuneCountInString(text),
		"charset":    c.Charset,
	}).Infof("Encoded %v", c.Input)

	return commands.WriteOutput(c.Output, out)
}
