package compare

import (
	"flag"
	"fmt"

	"github.com/brfiscal/cadastro/internal/cmd/base"
	"github.com/brfiscal/cadastro/pkg/cpf"
)

type Command struct {
	*base.Command

	flagQuiet bool
}

func (c *Command) Synopsis() string {
	return "Check whether two strings name the same CPF number"
}

func (c *Command) Help() string {
	return `Usage: cadastro compare [options] <number> <number>

  This command compares two CPF strings by value: punctuation
  differences are ignored, and a 9-digit number equals its 11-digit form
  when the check digits match. Malformed input compares as not equal.

  The exit code is 0 when the numbers are equal and 1 otherwise.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("compare", flag.ExitOnError))

	f.BoolVar(
		&c.flagQuiet, "quiet", false,
		"Suppress output and report through the exit code only.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if len(flags.Args()) != 2 {
		ui.Error("compare takes exactly two numbers")
		return 1
	}

	a, b := flags.Args()[0], flags.Args()[1]
	if cpf.CompareStrings(a, b) {
		if !c.flagQuiet {
			ui.Output("equal")
		}
		return 0
	}
	if !c.flagQuiet {
		ui.Output("not equal")
	}
	return 1
}
