package flags

import (
	"testing"

	"github.com/urfave/cli/v2"
)

// A flag declared on both the app and a command must serve the same
// value through the command context whether it was set at the global
// position or on the command itself.
func TestMigrateGlobalFlags(t *testing.T) {
	run := func(t *testing.T, args ...string) (string, bool) {
		t.Helper()
		var (
			seen  string
			isSet bool
		)
		mode := &cli.StringFlag{Name: "mode", Value: "slow"}
		app := cli.NewApp()
		app.Flags = []cli.Flag{mode}
		app.Before = func(ctx *cli.Context) error {
			MigrateGlobalFlags(ctx)
			return nil
		}
		app.Commands = []*cli.Command{{
			Name:  "show",
			Flags: []cli.Flag{mode},
			Action: func(ctx *cli.Context) error {
				seen = ctx.String(mode.Name)
				isSet = ctx.IsSet(mode.Name)
				return nil
			},
		}}
		if err := app.Run(append([]string{"tool"}, args...)); err != nil {
			t.Fatalf("app run failed: %v", err)
		}
		return seen, isSet
	}

	forms := [][]string{
		{"--mode", "fast", "show"},
		{"show", "--mode", "fast"},
	}
	for _, form := range forms {
		seen, isSet := run(t, form...)
		if !isSet {
			t.Errorf("%v: flag not marked set in the command context", form)
		}
		if seen != "fast" {
			t.Errorf("%v: command saw mode %q, want %q", form, seen, "fast")
		}
	}
}

// An unset global flag must not clobber the command-level default.
func TestMigrateGlobalFlagsUnsetGlobal(t *testing.T) {
	var seen string
	mode := &cli.StringFlag{Name: "mode", Value: "slow"}
	app := cli.NewApp()
	app.Flags = []cli.Flag{mode}
	app.Before = func(ctx *cli.Context) error {
		MigrateGlobalFlags(ctx)
		return nil
	}
	app.Commands = []*cli.Command{{
		Name:  "show",
		Flags: []cli.Flag{mode},
		Action: func(ctx *cli.Context) error {
			seen = ctx.String(mode.Name)
			return nil
		},
	}}
	if err := app.Run([]string{"tool", "show"}); err != nil {
		t.Fatalf("app run failed: %v", err)
	}
	if seen != "slow" {
		t.Errorf("command saw mode %q, want the default %q", seen, "slow")
	}
}
