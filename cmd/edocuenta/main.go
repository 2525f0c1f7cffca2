package main

import (
	"os"

	"github.com/edocuenta/edocuenta/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
