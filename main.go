// main is the entry point for the courtside CLI.
package main

import (
	"github.com/courtside/courtside/cmd"
	"github.com/courtside/courtside/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Failed to stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
