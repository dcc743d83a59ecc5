// Package main is the entry point for the blogctl CLI
package main

import (
	"os"

	"github.com/timrosenblatt/org/cmd"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
