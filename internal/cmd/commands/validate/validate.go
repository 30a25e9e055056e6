package validate

import (
	"errors"
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/brfiscal/cadastro/internal/cmd/base"
	"github.com/brfiscal/cadastro/pkg/cpf"
)

type Command struct {
	*base.Command

	flagPermissive bool
	flagQuiet      bool
}

func (c *Command) Synopsis() string {
	return "Validate one or more CPF numbers"
}

func (c *Command) Help() string {
	return `Usage: cadastro validate [options] [number...]

  This command validates CPF numbers: digit format, check digits and the
  denylist of repeated-digit numbers. Dots, dashes and spaces in the
  input are ignored. When no numbers are given as arguments, one is read
  from standard input.

  The exit code is 0 when every number is valid and 1 otherwise.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("validate", flag.ExitOnError))

	f.BoolVar(
		&c.flagPermissive, "permissive", false,
		"Accept 9-digit numbers without their check digits.",
	)
	f.BoolVar(
		&c.flagQuiet, "quiet", false,
		"Suppress output and report through the exit code only.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	// Parse flags.
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	inputs := flags.Args()
	if len(inputs) == 0 {
		raw, err := ui.Ask("CPF number:")
		if err != nil {
			ui.Error(fmt.Sprintf("error reading input: %v", err))
			return 1
		}
		inputs = []string{raw}
	}

	var result *multierror.Error
	for _, input := range inputs {
		if err := cpf.RequireValid(input, c.flagPermissive); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("%s: %s", input, reason(err)))
			continue
		}
		if !c.flagQuiet {
			ui.Output(fmt.Sprintf("%s: valid", input))
		}
	}

	if result.ErrorOrNil() != nil {
		if !c.flagQuiet {
			for _, err := range result.Errors {
				ui.Error(err.Error())
			}
		}
		return 1
	}

	return 0
}

// reason maps a validation error to the message shown to the user.
func reason(err error) string {
	switch {
	case errors.Is(err, cpf.ErrInvalidCharacters):
		return "contains characters other than digits, dots, dashes and spaces"
	case errors.Is(err, cpf.ErrInvalidLength):
		return "wrong number of digits"
	case errors.Is(err, cpf.ErrInvalidCheckDigit):
		return "check digits do not match, the number was probably mistyped"
	case errors.Is(err, cpf.ErrInvalidDenylisted):
		return "repeated-digit number, no such CPF is issued"
	default:
		return err.Error()
	}
}
