// Command dualclass is the operator CLI for the Dual Class API: it prints
// prompts, runs a single generation, renders and cleans lesson images and
// probes the configured model.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(defaultEnv()).Execute(); err != nil {
		os.Exit(1)
	}
}
