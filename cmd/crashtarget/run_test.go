package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/docker/docker/pkg/reexec"
	"github.com/faultline-dev/faultline/internal/cmdtest"
)

type testCrashtarget struct {
	*cmdtest.TestCmd
}

// spawns crashtarget with the given command line args.
func runCrashtarget(t *testing.T, args ...string) *testCrashtarget {
	tt := new(testCrashtarget)
	tt.TestCmd = cmdtest.NewTestCmd(t, tt)
	tt.Run("crashtarget-test", args...)
	return tt
}

func TestMain(m *testing.M) {
	// The menu prompt and the colored warning must render
	// pipe-deterministically in the spawned children.
	os.Setenv("TERM", "dumb")

	// Run the app if we've been exec'd as "crashtarget-test" in runCrashtarget.
	reexec.Register("crashtarget-test", func() {
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	})
	// check if we have been reexec'd
	if reexec.Init() {
		return
	}
	os.Exit(m.Run())
}
