// injectbreak asks a running process to stop in its debugger.
package main

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/inconshreveable/log15"
	"github.com/urfave/cli/v2"

	"github.com/faultline-dev/faultline/cmd/utils"
	"github.com/faultline-dev/faultline/debugbreak"
	"github.com/faultline-dev/faultline/internal/debug"
	"github.com/faultline-dev/faultline/internal/flags"
)

const clientIdentifier = "injectbreak"

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""

	app = flags.NewApp(gitCommit, gitDate, "a debugger break injector")
)

func init() {
	app.ArgsUsage = "<pid>"
	app.Flags = debug.Flags
	app.Before = func(ctx *cli.Context) error {
		flags.MigrateGlobalFlags(ctx)
		return debug.Setup(ctx)
	}
	app.Action = run
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		utils.Fatalf("Usage: %s <pid>", clientIdentifier)
	}
	arg := ctx.Args().First()
	pid, err := strconv.Atoi(arg)
	if err != nil || pid <= 0 {
		utils.Fatalf("invalid process identifier %q", arg)
	}

	proc, err := debugbreak.Open(pid)
	if err != nil {
		utils.Fatalf("Failed to open process. Error code: %d (%v)", debugbreak.ErrnoCode(err), err)
	}
	breakAndRelease(proc, pid)
	return nil
}

// breakAndRelease delivers the break request and closes the handle.
// Fatalf ends the process without running deferred calls, so both
// branches release explicitly before any exit.
func breakAndRelease(proc *debugbreak.Process, pid int) {
	if err := proc.Break(); err != nil {
		proc.Close()
		utils.Fatalf("Failed to break into process. Error code: %d (%v)", debugbreak.ErrnoCode(err), err)
	}
	proc.Close()
	log.Info("Debug break delivered", "pid", pid)
}
