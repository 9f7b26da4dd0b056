// Package debugbreak opens a handle on a foreign process and asks the
// OS to deliver a debug-break event into it. The handle is exclusively
// owned: acquired once, used, and released exactly once per invocation.
//
// The platform channel differs. Windows starts a break thread through
// DebugBreakProcess; Linux delivers SIGTRAP through a pidfd; the other
// Unixes deliver SIGTRAP through kill(2). In every case an attached
// debugger reports a breakpoint event, and an undebugged target dies as
// if it had executed a breakpoint instruction.
package debugbreak

import (
	"errors"
	"fmt"
	"syscall"
)

// AttachError reports a failed handle acquisition. Err preserves the
// OS-level cause.
type AttachError struct {
	Pid int
	Err error
}

func (e *AttachError) Error() string {
	return fmt.Sprintf("debugbreak: attach to pid %d: %v", e.Pid, e.Err)
}

func (e *AttachError) Unwrap() error { return e.Err }

// BreakError reports a failed break request against an acquired handle.
type BreakError struct {
	Pid int
	Err error
}

func (e *BreakError) Error() string {
	return fmt.Sprintf("debugbreak: break request for pid %d: %v", e.Pid, e.Err)
}

func (e *BreakError) Unwrap() error { return e.Err }

// ErrnoCode digs the numeric OS error code out of err, or 0 when the
// chain carries none.
func ErrnoCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
