package main

import (
	"os"

	"github.com/modforge/modforge/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
