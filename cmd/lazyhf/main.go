package main

import (
	"fmt"
	"os"
)

var (
	rootCommand = newRootCommand
	osExit      = os.Exit
)

func main() {
	cmd := rootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		osExit(exitCode(err))
	}
}
