package version

import (
	"fmt"
	"io"
	"os"

	"github.com/bokysan/base32768/internal/util/enc"
	"github.com/bokysan/base32768/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build information and the list of available encoders
type Command struct {
	out io.Writer
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	w := i.out
	if w == nil {
		w = ansi.NewAnsiStdout()
	}

	PrintVersion(w)
	fmt.Fprintf(w, DarkGray+" Author      "+White+"%+v"+Reset+"\n", "Bojan Cekrlic <github.com/bokysan>")
	if version.GitTag != "" {
		fmt.Fprintf(w, DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		fmt.Fprintf(w, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(w, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(w, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	for _, e := range enc.All() {
		fmt.Fprintf(w, DarkGray+" Encoder     "+White+"%-12v"+DarkGray+"%.3f chars/byte"+Reset+"\n", enc.Describe(e), e.Ratio())
	}
	if i.out == nil {
		os.Exit(0)
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, Bold+BackgroundBlue+
		LightGray+" BASE32768 - 15 bits per character "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
