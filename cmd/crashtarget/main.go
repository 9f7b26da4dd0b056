// crashtarget is a deliberately faulting process for exercising an
// external debugger. It crashes in one of a fixed set of ways, chosen
// on the command line, from an interactive menu, or by the unattended
// test sequence.
package main

import (
	"fmt"
	"os"
	godebug "runtime/debug"
	"strconv"

	log "github.com/inconshreveable/log15"
	"github.com/urfave/cli/v2"

	"github.com/faultline-dev/faultline/autorun"
	"github.com/faultline-dev/faultline/cmd/utils"
	"github.com/faultline-dev/faultline/fault"
	"github.com/faultline-dev/faultline/internal/debug"
	"github.com/faultline-dev/faultline/internal/flags"
)

const clientIdentifier = "crashtarget"

// Git SHA1 commit hash of the release (set via linker flags)
var gitCommit = ""
var gitDate = ""

var (
	attachDelayFlag = &cli.DurationFlag{
		Name:     "attach-delay",
		Usage:    "Attach window before the automated run starts its warmup",
		Value:    autorun.DefaultAttachDelay,
		Category: flags.AutoRunCategory,
	}
	crashDelayFlag = &cli.DurationFlag{
		Name:     "crash-delay",
		Usage:    "Pause between the warmup computation and the terminal fault",
		Value:    autorun.DefaultTriggerDelay,
		Category: flags.AutoRunCategory,
	}
	maxStackFlag = &cli.IntFlag{
		Name:     "maxstack",
		Usage:    "Cap the goroutine stack at this many bytes so the overflow fault exhausts it sooner (0 = runtime default)",
		Category: flags.FaultCategory,
	}
)

var app *cli.App

func init() {
	app = flags.NewApp(gitCommit, gitDate, "a deliberately crashing debugger target")
	app.ArgsUsage = "[selector | test]"
	app.Flags = []cli.Flag{
		attachDelayFlag,
		crashDelayFlag,
		maxStackFlag,
	}
	app.Flags = append(app.Flags, debug.Flags...)
	app.Before = func(ctx *cli.Context) error {
		flags.MigrateGlobalFlags(ctx)
		if err := debug.Setup(ctx); err != nil {
			return err
		}
		if max := ctx.Int(maxStackFlag.Name); max > 0 {
			godebug.SetMaxStack(max)
		}
		return nil
	}
	app.Action = run
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run dispatches on the argument form: no arguments opens the menu, a
// lone integer selects a fault, and the literal "test" starts the
// automated sequence.
func run(ctx *cli.Context) error {
	switch ctx.NArg() {
	case 0:
		return runMenu(ctx)
	case 1:
		arg := ctx.Args().First()
		if arg == "test" {
			runAutomated(ctx)
			// The sequence ends in a fault, so regaining control here
			// means the run failed.
			os.Exit(1)
		}
		selector, err := strconv.Atoi(arg)
		if err != nil {
			utils.Fatalf("invalid fault selector %q, expected an integer or the literal \"test\"", arg)
		}
		triggerSelector(selector)
	default:
		utils.Fatalf("too many arguments, expected a single fault selector or \"test\"")
	}
	return nil
}

func runAutomated(ctx *cli.Context) {
	seq := autorun.New()
	seq.AttachDelay = ctx.Duration(attachDelayFlag.Name)
	seq.TriggerDelay = ctx.Duration(crashDelayFlag.Name)
	seq.Run()
}

// triggerSelector prints the dispatch line and executes the fault. For
// a true fault that line is the final stdout write of the process;
// external scripts key on it.
func triggerSelector(selector int) {
	fmt.Printf("Triggering crash type %d...\n", selector)
	kind := fault.Lookup(selector)
	if !fault.Known(selector) {
		fmt.Printf("Invalid choice, defaulting to %v\n", kind)
		log.Warn("Unknown fault selector, falling back", "selector", selector, "kind", kind)
	}
	fault.Trigger(kind)
	// Only an out-of-bounds read that found mapped memory gets here.
	fmt.Println("This line should not be reached")
	os.Exit(1)
}
