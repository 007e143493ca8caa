package main

import (
	"fmt"
	"os"
)

// main entry point to running environments from the command line
func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
