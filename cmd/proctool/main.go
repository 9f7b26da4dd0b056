// proctool inspects the process table around harness runs: finding
// stray targets, checking their liveness, and cleaning up after
// crashed runs.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/faultline-dev/faultline/cmd/utils"
	"github.com/faultline-dev/faultline/internal/debug"
	"github.com/faultline-dev/faultline/internal/flags"
	"github.com/faultline-dev/faultline/procinfo"
)

const clientIdentifier = "proctool"

var (
	// Git SHA1 commit hash of the release (set via linker flags)
	gitCommit = ""
	gitDate   = ""

	app = flags.NewApp(gitCommit, gitDate, "a process table utility")
)

var forceFlag = &cli.BoolFlag{
	Name:     "force",
	Aliases:  []string{"f"},
	Usage:    "Send the uncatchable kill instead of a termination request",
	Category: flags.ProcessCategory,
}

var (
	listCommand = &cli.Command{
		Action:    list,
		Name:      "list",
		Usage:     "Print every visible process",
		ArgsUsage: " ",
		Flags:     debug.Flags,
		Category:  flags.ProcessCategory,
	}
	findCommand = &cli.Command{
		Action:    find,
		Name:      "find",
		Usage:     "Print the processes whose name contains the given string",
		ArgsUsage: "<name>",
		Flags:     debug.Flags,
		Category:  flags.ProcessCategory,
		Description: `
Matching is case-insensitive. Processes that disappear during the walk
are skipped.
`,
	}
	checkCommand = &cli.Command{
		Action:    check,
		Name:      "check",
		Usage:     "Probe whether a process identifier is live",
		ArgsUsage: "<pid>",
		Flags:     debug.Flags,
		Category:  flags.ProcessCategory,
	}
	killCommand = &cli.Command{
		Action:    kill,
		Name:      "kill",
		Usage:     "End a process, politely by default",
		ArgsUsage: "<pid>",
		Flags:     append([]cli.Flag{forceFlag}, debug.Flags...),
		Category:  flags.ProcessCategory,
		Description: `
Sends a termination request and leaves the shutdown to the target. With
--force the kill is unconditional and the target gets no say.
`,
	}
)

func init() {
	app.Commands = []*cli.Command{
		listCommand,
		findCommand,
		checkCommand,
		killCommand,
		versionCommand,
	}
	app.Flags = debug.Flags
	app.Before = func(ctx *cli.Context) error {
		flags.MigrateGlobalFlags(ctx)
		return debug.Setup(ctx)
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func list(ctx *cli.Context) error {
	infos, err := procinfo.List()
	if err != nil {
		utils.Fatalf("Failed to list processes: %v", err)
	}
	printTable(infos)
	return nil
}

func find(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		utils.Fatalf("Must supply a process name")
	}
	infos, err := procinfo.Find(name)
	if err != nil {
		utils.Fatalf("Failed to search processes: %v", err)
	}
	if len(infos) == 0 {
		fmt.Println("No matching processes")
		return nil
	}
	printTable(infos)
	return nil
}

func check(ctx *cli.Context) error {
	pid := parsePid(ctx)
	if !procinfo.Running(pid) {
		utils.Fatalf("Process %d is not running", pid)
	}
	fmt.Printf("Process %d is running\n", pid)
	return nil
}

func kill(ctx *cli.Context) error {
	pid := parsePid(ctx)
	force := ctx.Bool(forceFlag.Name)
	if err := procinfo.Kill(pid, force); err != nil {
		utils.Fatalf("Failed to kill process %d: %v", pid, err)
	}
	if force {
		fmt.Printf("Killed process %d\n", pid)
	} else {
		fmt.Printf("Terminated process %d\n", pid)
	}
	return nil
}

func parsePid(ctx *cli.Context) int32 {
	arg := ctx.Args().First()
	if arg == "" {
		utils.Fatalf("Must supply a process identifier")
	}
	pid, err := strconv.Atoi(arg)
	if err != nil || pid <= 0 {
		utils.Fatalf("invalid process identifier %q", arg)
	}
	return int32(pid)
}

func printTable(infos []procinfo.Info) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"PID", "NAME", "STATUS", "CPU%", "MEM%"})
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			strconv.Itoa(int(info.Pid)),
			info.Name,
			info.Status,
			fmt.Sprintf("%.1f", info.CPUPercent),
			fmt.Sprintf("%.1f", info.MemPercent),
		})
	}
	table.AppendBulk(rows)
	table.Render()
}
