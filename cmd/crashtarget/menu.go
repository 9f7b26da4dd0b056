package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	log "github.com/inconshreveable/log15"
	"github.com/peterh/liner"
	"github.com/urfave/cli/v2"

	"github.com/faultline-dev/faultline/autorun"
	"github.com/faultline-dev/faultline/fault"
)

// Menu selectors past the fault catalog.
const (
	menuStatistics = 5
	menuQuit       = 6
)

// menuSeries feeds the benign statistics entry, giving a debugger a
// harmless code path to step through between crashes.
var menuSeries = []int{1, 2, 3, 4, 5}

var crashWarning = color.New(color.FgYellow)

func printMenu() {
	fmt.Println("Test App Menu:")
	for _, k := range fault.Kinds() {
		fmt.Printf("%d. %s\n", int(k), strings.Title(k.String()))
	}
	fmt.Printf("%d. Calculate statistics\n", menuStatistics)
	fmt.Printf("%d. Exit\n", menuQuit)
	crashWarning.Printf("Choices 1-%d crash this process on purpose.\n", len(fault.Kinds()))
}

// runMenu drives the interactive selector loop. Unrecognized input
// re-prompts instead of falling back to the default fault: a human at
// the prompt gets told, only the command line funnels unknowns into a
// crash.
func runMenu(ctx *cli.Context) error {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	defer line.Close()

	for {
		printMenu()
		input, err := line.Prompt(fmt.Sprintf("Enter your choice [%d]: ", int(fault.DefaultKind)))
		switch err {
		case nil:
		case liner.ErrPromptAborted, io.EOF:
			log.Debug("Prompt closed, exiting", "cause", err)
			return nil
		default:
			return err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			// Empty input picks the displayed default.
			input = strconv.Itoa(int(fault.DefaultKind))
		}
		selector, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("Invalid choice. Please try again.")
			fmt.Println()
			continue
		}
		switch {
		case selector == menuQuit:
			return nil
		case selector == menuStatistics:
			autorun.Compute(menuSeries).Fprint(os.Stdout)
			fmt.Println()
		case fault.Known(selector):
			// Restore the terminal before the process dies on purpose.
			line.Close()
			triggerSelector(selector)
		default:
			fmt.Println("Invalid choice. Please try again.")
			fmt.Println()
		}
	}
}
