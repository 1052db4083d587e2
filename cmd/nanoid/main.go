// nanoid CLI - generate NanoIDs and preview upload paths from the terminal.
package main

import "github.com/getnanoid/nanoid/pkg/cli"

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	cli.Version = Version
	cli.Commit = Commit
	cli.BuildDate = BuildDate
	cli.Execute()
}
