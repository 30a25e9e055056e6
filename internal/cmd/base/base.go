package base

import (
	"flag"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command contains the dependencies shared by all CLI commands.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// NewCommand creates the shared command base.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
	}
}

// FlagSet wraps a flag.FlagSet with help text rendering for command
// Help output.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet creates a new wrapped flag set.
func NewFlagSet(fs *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: fs}
}

// Help renders the flag set as an options block for appending to a
// command's help text. Returns the empty string when the command has no
// flags.
func (f *FlagSet) Help() string {
	var count int
	f.VisitAll(func(*flag.Flag) { count++ })
	if count == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s\n      %s", fl.Name, fl.Usage)
		if fl.DefValue != "" && fl.DefValue != "false" {
			fmt.Fprintf(&b, " (default: %s)", fl.DefValue)
		}
	})
	return b.String()
}
