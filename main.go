package main

import (
	"os"

	"github.com/semiotic-labs/agentium-docs/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
