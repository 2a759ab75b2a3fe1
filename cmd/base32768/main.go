package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/base32768/internal/args"
	"github.com/bokysan/base32768/internal/commands/decode"
	"github.com/bokysan/base32768/internal/commands/encode"
	"github.com/bokysan/base32768/internal/commands/verify"
	"github.com/bokysan/base32768/internal/commands/version"
	b32Flags "github.com/bokysan/base32768/internal/flags"
	"github.com/bokysan/base32768/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base32768 is the main executable
type Base32768 struct {
	parser *flags.Parser
}

// NewBase32768 will create a new instance of Base32768 and initialize the parser
func NewBase32768() *Base32768 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &Base32768{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()
	b.setupVerify()

	return b
}

// setupGeneral will configure general options
func (b *Base32768) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *Base32768) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and the list of available encoders and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *Base32768) setupEncode() {
	cmd := encode.NewCommand()
	_, err := b.parser.AddCommand(
		"encode",
		"Encode binary data into text",
		"Read binary data and write it out as text, by default using 15 bits per character",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (b *Base32768) setupDecode() {
	cmd := decode.NewCommand()
	_, err := b.parser.AddCommand(
		"decode",
		"Decode text into binary data",
		"Read text produced by the encode command and write out the original binary data",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupVerify adds the `verify` command
func (b *Base32768) setupVerify() {
	cmd := verify.NewCommand()
	_, err := b.parser.AddCommand(
		"verify",
		"Verify an encoder",
		"Check an encoder against directories of .bin/.txt fixture pairs, or against its built-in test patterns if no directory is given",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// configure returns the callback for the `--config` option, which reads the yaml file into the parser's
// groups and commands
func (b *Base32768) configure(file string) error {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		message := fmt.Sprintf("Configuration file %s does not exist.", file)
		return &flags.Error{
			Type:    ErrConfigFileDoesNotExist,
			Message: message,
		}
	}

	yamlParser := b32Flags.NewYamlParser(b.parser)

	args.General.ConfigurationFilePath = file
	return yamlParser.ParseFile(file)
}

// main parses the command line, reads the configuration file and runs the selected command
func main() {

	b := NewBase32768()
	args.General.ConfigurationFile = func(file string) error {
		util.MustErrorNilOrExit(b.configure(file))
		return nil
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)

}
