package checkdigits

import (
	"flag"
	"fmt"

	"github.com/brfiscal/cadastro/internal/cmd/base"
	"github.com/brfiscal/cadastro/pkg/cpf"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Compute the check digits for a 9-digit CPF base"
}

func (c *Command) Help() string {
	return `Usage: cadastro check-digits <number>

  This command computes the two check digits for the first nine digits
  of a CPF number. Dots, dashes and spaces in the input are ignored.`
}

func (c *Command) Flags() *base.FlagSet {
	return base.NewFlagSet(
		flag.NewFlagSet("check-digits", flag.ExitOnError))
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if len(flags.Args()) != 1 {
		ui.Error("check-digits takes exactly one 9-digit number")
		return 1
	}
	input := flags.Args()[0]

	digits := cpf.StripSymbols(input)
	if err := cpf.RequireFormat(digits, true); err != nil {
		ui.Error(fmt.Sprintf("%s: %v", input, err))
		return 1
	}
	if len(digits) != 9 {
		ui.Error(fmt.Sprintf("%s: number already has check digits", input))
		return 1
	}

	ui.Output(cpf.ComputeCheckDigits(digits))
	return 0
}
