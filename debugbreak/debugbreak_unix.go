//go:build !linux && !windows && !js

package debugbreak

import (
	"syscall"

	log "github.com/inconshreveable/log15"
	"golang.org/x/sys/unix"
)

// Process is an exclusively owned handle on a foreign process. Without
// pidfds the validated pid itself is the capability, so acquisition is
// an existence-and-permission probe.
type Process struct {
	pid    int
	closed bool
}

// Open acquires a handle on pid by probing it with the null signal.
// Non-positive pids address process groups through kill(2) and are
// never valid targets.
func Open(pid int) (*Process, error) {
	if pid <= 0 {
		return nil, &AttachError{Pid: pid, Err: unix.EINVAL}
	}
	if err := unix.Kill(pid, 0); err != nil {
		return nil, &AttachError{Pid: pid, Err: err}
	}
	return &Process{pid: pid}, nil
}

// Break requests a debug-break event in the target. SIGTRAP is the
// signal a breakpoint raises, so an attached debugger reports a break
// and an undebugged target dies on a trace trap.
func (p *Process) Break() error {
	if p.closed {
		return &BreakError{Pid: p.pid, Err: syscall.EBADF}
	}
	if err := unix.Kill(p.pid, unix.SIGTRAP); err != nil {
		return &BreakError{Pid: p.pid, Err: err}
	}
	return nil
}

// Close releases the handle. No kernel object backs it on this
// platform, so closing only ends the ownership.
func (p *Process) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	log.Debug("Released process handle", "pid", p.pid)
	return nil
}

// Pid returns the target's process identifier.
func (p *Process) Pid() int { return p.pid }
