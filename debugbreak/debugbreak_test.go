package debugbreak

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"syscall"
	"testing"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.Root().SetHandler(log.DiscardHandler())
	os.Exit(m.Run())
}

// TestSleepHelper parks a child process for the break-delivery tests.
func TestSleepHelper(t *testing.T) {
	if os.Getenv("DEBUGBREAK_SLEEP") == "" {
		t.Skip("spawned-process helper")
	}
	fmt.Println("ready")
	time.Sleep(time.Minute)
}

// startSleeper spawns the helper and blocks until its runtime is up, so
// a break delivered right after cannot race process startup.
func startSleeper(t *testing.T) (*exec.Cmd, *bytes.Buffer) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run", "^TestSleepHelper$")
	cmd.Env = append(os.Environ(), "DEBUGBREAK_SLEEP=1")
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		cmd.Process.Kill()
		cmd.Wait()
	})
	sc := bufio.NewScanner(stdout)
	for sc.Scan() {
		if sc.Text() == "ready" {
			return cmd, stderr
		}
	}
	t.Fatal("sleeper never signalled readiness")
	return nil, nil
}

// A break delivered to an undebugged Go target kills it on a trace
// trap.
func TestBreakDeliversTrap(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("trap delivery is asserted through the unix signal name")
	}
	cmd, stderr := startSleeper(t)

	p, err := Open(cmd.Process.Pid)
	require.NoError(t, err)
	defer p.Close()
	require.NoError(t, p.Break())

	err = cmd.Wait()
	require.Error(t, err, "sleeper survived the break request")
	assert.Contains(t, stderr.String(), "SIGTRAP", "child did not die on a trace trap")
}

// A handle acquired while the target lived must fail the break request
// once the target is reaped, not deliver the trap to a recycled pid.
func TestBreakReapedTarget(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("reaping semantics differ on windows")
	}
	cmd, _ := startSleeper(t)

	p, err := Open(cmd.Process.Pid)
	require.NoError(t, err)
	defer p.Close()

	cmd.Process.Kill()
	cmd.Wait()

	err = p.Break()
	require.Error(t, err, "break request succeeded against a reaped target")
	var brk *BreakError
	require.ErrorAs(t, err, &brk)
	assert.Equal(t, int(syscall.ESRCH), ErrnoCode(err), "OS error code must surface")
}

func TestOpenMissingProcess(t *testing.T) {
	const pid = 1 << 30
	_, err := Open(pid)
	require.Error(t, err)
	var attach *AttachError
	require.ErrorAs(t, err, &attach)
	assert.Equal(t, pid, attach.Pid)
	assert.NotZero(t, ErrnoCode(err), "OS error code must surface")
	assert.Contains(t, err.Error(), strconv.Itoa(pid))
}

func TestOpenInvalidPid(t *testing.T) {
	for _, pid := range []int{0, -1} {
		_, err := Open(pid)
		var attach *AttachError
		require.ErrorAs(t, err, &attach, "pid %d", pid)
	}
}

func TestCloseIdempotent(t *testing.T) {
	p, err := Open(os.Getpid())
	require.NoError(t, err)
	assert.Equal(t, os.Getpid(), p.Pid())
	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
}

func TestBreakAfterClose(t *testing.T) {
	p, err := Open(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Close())
	var brk *BreakError
	require.ErrorAs(t, p.Break(), &brk, "released handle must not deliver a break")
}

func TestErrnoCode(t *testing.T) {
	assert.Equal(t, int(syscall.ESRCH), ErrnoCode(&AttachError{Pid: 1, Err: syscall.ESRCH}))
	assert.Equal(t, int(syscall.EPERM), ErrnoCode(&BreakError{Pid: 1, Err: syscall.EPERM}))
	assert.Zero(t, ErrnoCode(errors.New("no errno")))
	assert.Zero(t, ErrnoCode(nil))
}
