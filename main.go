package main

import (
	"os"

	"github.com/myproject/taskagent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
