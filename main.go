/*
SimpleConverters - Utilities for converting optical disc images between
CUE/BIN, ISO and CHD representations.

Copyright © 2025 PyGuy
*/
package main

import (
	"fmt"
	"os"

	"github.com/PyGuy0815/simple-converters/cmd"
)

// Version information (injected at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Check for version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("SimpleConverters %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)
		os.Exit(0)
	}

	cmd.Execute()
}
