// Package main starts the chaotic-gateway application.
package main

import (
	"fmt"
	"os"

	"github.com/subosito/gotenv"

	"github.com/temirov/chaotic-gateway/cmd"
)

const (
	// messageEnvironmentLoadFailed is printed when a present .env file cannot be parsed.
	messageEnvironmentLoadFailed = "failed to load environment variables: %v\n"
)

// main is the entry point for chaotic-gateway.
func main() {
	if environmentLoadError := gotenv.Load(); environmentLoadError != nil && !os.IsNotExist(environmentLoadError) {
		fmt.Fprintf(os.Stderr, messageEnvironmentLoadFailed, environmentLoadError)
	}

	cmd.Execute()
}
