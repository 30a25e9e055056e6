package main

import (
	"os"

	"github.com/brfiscal/cadastro/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
