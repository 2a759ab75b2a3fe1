package decode

import (
	"github.com/bokysan/base32768/internal/commands"
	"github.com/bokysan/base32768/internal/logging"
	"github.com/bokysan/base32768/internal/streams"
	"github.com/bokysan/base32768/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command reads encoded text and writes the binary payload it represents. Line breaks in the input are
// ignored, so wrapped output of the encode command can be fed back as is. Encoders which pass text through
// (Raw) keep them.
type Command struct {
	Encoder string `yaml:"encoder"  short:"e" long:"encoder"  env:"ENCODER"  description:"Encoder name or one-letter code" default:"Base32768"`
	Input   string `yaml:"input"    short:"i" long:"input"                   description:"Input file, '-' for stdin" default:"-"`
	Output  string `yaml:"output"   short:"o" long:"output"                  description:"Output file, '-' for stdout" default:"-"`
	Charset string `yaml:"charset"  short:"s" long:"charset"  env:"CHARSET"  description:"Charset of the input text" choice:"utf-8" choice:"utf-16le" choice:"utf-16be" default:"utf-8"`
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

// Run decodes the input into the output
func (c *Command) Run() error {
	e, err := commands.FindEncoder(c.Encoder)
	if err != nil {
		return err
	}

	raw, err := commands.ReadInput(c.Input)
	if err != nil {
		return err
	}

	text, err := streams.DecodeText(raw, c.Charset)
	if err != nil {
		return err
	}

	if !enc.KeepsLineBreaks(e) {
		text = streams.StripNewlines(text)
	}

	data, err := e.Decode(text)
	if err != nil {
		return errors.Wrapf(err, "%v could not decode %v", enc.Describe(e), c.Input)
	}

	log.WithFields(log.Fields{
		"encoder": enc.Describe(e),
		"bytes":   len(data),
		"charset": c.Charset,
	}).Infof("Decoded %v", c.Input)

	return commands.WriteOutput(c.Output, data)
}
