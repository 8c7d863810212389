package main

import (
	"os"

	"github.com/spigell/asha-actions/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
