// main holds the entry logic for the bikeshare CLI.
package main

import (
	"github.com/jmgilman/pdsnd-github/cmd"
	"github.com/jmgilman/pdsnd-github/internal/contract"
)

// main is the entry point for the bikeshare CLI.
func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Cannot run bikeshare", err)
	}
}
