package main

import (
	"os"

	"github.com/baw-market/baw-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
