package main

import (
	"os"

	"github.com/voxlab/scour/cmd/scour/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
