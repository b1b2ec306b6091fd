package main

import (
	"os"

	"github.com/parleyhq/parley/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
