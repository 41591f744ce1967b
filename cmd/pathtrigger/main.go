package main

import (
	"github.com/pathtrigger/pathtrigger/internal/cli"
)

// Version information set by goreleaser or build flags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	cli.Execute()
}
