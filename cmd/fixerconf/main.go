// Package main is the entry point for fixerconf.
package main

import (
	"os"

	"github.com/donaldgifford/fixerconf/internal/cli"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersionInfo(version, commit, date)
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
