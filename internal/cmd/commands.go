package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/brfiscal/cadastro/internal/cmd/base"
	"github.com/brfiscal/cadastro/internal/cmd/commands/checkdigits"
	"github.com/brfiscal/cadastro/internal/cmd/commands/compare"
	"github.com/brfiscal/cadastro/internal/cmd/commands/format"
	"github.com/brfiscal/cadastro/internal/cmd/commands/inspect"
	"github.com/brfiscal/cadastro/internal/cmd/commands/validate"
	versioncmd "github.com/brfiscal/cadastro/internal/cmd/commands/version"
)

// Commands is the mapping of all available CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"validate": func() (cli.Command, error) {
			return &validate.Command{Command: b}, nil
		},
		"format": func() (cli.Command, error) {
			return &format.Command{Command: b}, nil
		},
		"inspect": func() (cli.Command, error) {
			return &inspect.Command{Command: b}, nil
		},
		"check-digits": func() (cli.Command, error) {
			return &checkdigits.Command{Command: b}, nil
		},
		"compare": func() (cli.Command, error) {
			return &compare.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: b}, nil
		},
	}
}
