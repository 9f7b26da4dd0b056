package main

import (
	"fmt"
	"os"
	"testing"

	"github.com/docker/docker/pkg/reexec"
	"github.com/faultline-dev/faultline/internal/cmdtest"
)

type testInjectbreak struct {
	*cmdtest.TestCmd
}

// spawns injectbreak with the given command line args.
func runInjectbreak(t *testing.T, args ...string) *testInjectbreak {
	tt := new(testInjectbreak)
	tt.TestCmd = cmdtest.NewTestCmd(t, tt)
	tt.Run("injectbreak-test", args...)
	return tt
}

func TestMain(m *testing.M) {
	// Run the app if we've been exec'd as "injectbreak-test" in runInjectbreak.
	reexec.Register("injectbreak-test", func() {
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
