package main

import (
	"os"

	"github.com/checkmend/checkmend/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
