// Package debug carries the logging flags every harness binary shares
// and wires them into the root logger.
package debug

import (
	"fmt"
	"os"

	log "github.com/inconshreveable/log15"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/faultline-dev/faultline/internal/flags"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug",
		Value:    3,
		Category: flags.LoggingCategory,
	}
	logjsonFlag = &cli.BoolFlag{
		Name:     "log.json",
		Usage:    "Format logs with JSON",
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for debugging.
var Flags = []cli.Flag{
	verbosityFlag,
	logjsonFlag,
}

// Setup initializes logging based on command line flags. All
// diagnostics go to stderr: stdout stays reserved for the transcript
// lines external scripts parse.
func Setup(ctx *cli.Context) error {
	var handler log.Handler
	switch {
	case ctx.Bool(logjsonFlag.Name):
		handler = log.StreamHandler(os.Stderr, log.JsonFormat())
	case isatty.IsTerminal(os.Stderr.Fd()) && os.Getenv("TERM") != "dumb":
		handler = log.StreamHandler(colorable.NewColorableStderr(), log.TerminalFormat())
	default:
		handler = log.StreamHandler(os.Stderr, log.LogfmtFormat())
	}
	verbosity := ctx.Int(verbosityFlag.Name)
	if verbosity < int(log.LvlCrit) || verbosity > int(log.LvlDebug) {
		return fmt.Errorf("invalid verbosity %d, accepted range is 0-4", verbosity)
	}
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(verbosity), handler))
	return nil
}
