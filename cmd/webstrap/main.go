package main

import (
	"os"

	"github.com/webstrap-cli/webstrap/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
