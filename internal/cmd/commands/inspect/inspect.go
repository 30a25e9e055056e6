package inspect

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/brfiscal/cadastro/internal/cmd/base"
	"github.com/brfiscal/cadastro/pkg/cpf"
)

type Command struct {
	*base.Command

	flagJSON bool
}

// report is the JSON view of a CPF breakdown.
type report struct {
	CPF          string `json:"cpf"`
	Digits       string `json:"digits"`
	RandomDigits string `json:"random_digits"`
	RegionDigit  string `json:"region_digit"`
	Region       int    `json:"region"`
	CheckDigits  string `json:"check_digits"`
	Valid        bool   `json:"valid"`
}

func (c *Command) Synopsis() string {
	return "Show the components of a CPF number"
}

func (c *Command) Help() string {
	return `Usage: cadastro inspect [options] <number>

  This command breaks a CPF number into its components: the 8 random
  digits, the fiscal region digit (and the region it denotes), the two
  check digits, and whether the number is valid. When no number is given
  as an argument, one is read from standard input.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("inspect", flag.ExitOnError))

	f.BoolVar(
		&c.flagJSON, "json", false,
		"Print the breakdown as a JSON object.",
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
		ui.Error("inspect takes at most one number")
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

	if c.flagJSON {
		out, err := json.MarshalIndent(report{
			CPF:          id.String(),
			Digits:       id.DigitsOnly(),
			RandomDigits: id.RandomDigits(),
			RegionDigit:  id.RegionDigit(),
			Region:       id.Region(),
			CheckDigits:  id.CheckDigits(),
			Valid:        id.IsValid(),
		}, "", "  ")
		if err != nil {
			ui.Error(fmt.Sprintf("error encoding JSON: %v", err))
			return 1
		}
		ui.Output(string(out))
		return 0
	}

	valid := "no"
	if id.IsValid() {
		valid = "yes"
	}
	ui.Output(fmt.Sprintf("CPF:           %s", id))
	ui.Output(fmt.Sprintf("Random digits: %s", id.RandomDigits()))
	ui.Output(fmt.Sprintf("Region digit:  %s", id.RegionDigit()))
	ui.Output(fmt.Sprintf("Fiscal region: %d", id.Region()))
	ui.Output(fmt.Sprintf("Check digits:  %s", id.CheckDigits()))
	ui.Output(fmt.Sprintf("Valid:         %s", valid))
	return 0
}
