package main

import (
	"os"

	"github.com/fluo-io/fluo-go/cli"
)

func main() {
	cmd := cli.RootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
