package main

import (
	"fmt"
	"os"

	"github.com/hbjs97/dirprofile/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(cli.MapExitCode(err)))
	}
}
