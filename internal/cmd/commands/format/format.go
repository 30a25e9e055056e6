package format

import (
	"flag"
	"fmt"

	"github.com/brfiscal/cadastro/internal/cmd/base"
	"github.com/brfiscal/cadastro/pkg/cpf"
)

type Command struct {
	*base.Command

	flagDigits bool
}

func (c *Command) Synopsis() string {
	return "Print a CPF number in canonical form"
}

func (c *Command) Help() string {
	return `Usage: cadastro format [options] <number>

  This command normalizes a CPF number to the canonical
  AAA.AAA.AAB-ZZ form. A 9-digit number has its two check digits
  computed and appended. When no number is given as an argument, one is
  read from standard input.

  Formatting does not require the number to be valid; use
  'cadastro validate' for that.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("format", flag.ExitOnError))

	f.BoolVar(
		&c.flagDigits, "digits", false,
		"Print the bare 11 digits instead of the punctuated form.",
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

	if len(flags.Args()) > 1 {
		ui.Error("format takes at most one number")
		return 1
	}

	input := ""
	if len(flags.Args()) == 1 {
		input = flags.Args()[0]
	} else {
		raw, err := ui.Ask("CPF number:")
		if err != nil {
			ui.Error(fmt.Sprintf("error reading input: %v", err))
			return 1
		}
		input = raw
	}

	id, err := cpf.Parse(input)
	if err != nil {
		ui.Error(fmt.Sprintf("%s: %v", input, err))
		return 1
	}

	if c.flagDigits {
		ui.Output(id.DigitsOnly())
	} else {
		ui.Output(id.String())
	}
	return 0
}
