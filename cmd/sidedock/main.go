package main

import (
	"runtime"

	"github.com/filein/sidedock/internal/cli/cmd"
	"github.com/filein/sidedock/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Pass build info to CLI
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Shows help if no subcommand is given
	cmd.Execute()
}
