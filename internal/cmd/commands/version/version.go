package version

import (
	"github.com/brfiscal/cadastro/internal/cmd/base"
	"github.com/brfiscal/cadastro/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of this binary"
}

func (c *Command) Help() string {
	return `Usage: cadastro version

  This command prints the version of the binary.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
