package main

import (
	"os"

	"github.com/ekaplan/mathquest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
