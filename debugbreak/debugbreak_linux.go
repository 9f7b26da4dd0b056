//go:build linux

package debugbreak

import (
	"errors"
	"syscall"

	log "github.com/inconshreveable/log15"
	"golang.org/x/sys/unix"
)

// Process is an exclusively owned handle on a foreign process. It wraps
// a pidfd, which pins the target's identity across pid reuse between
// acquisition and signal delivery. Kernels before 5.3 lack pidfd_open;
// there the validated bare pid is the handle and fd stays -1.
type Process struct {
	pid    int
	fd     int
	closed bool
}

// Open acquires a handle on pid.
func Open(pid int) (*Process, error) {
	fd, err := unix.PidfdOpen(pid, 0)
	if err == nil {
		return &Process{pid: pid, fd: fd}, nil
	}
	if !errors.Is(err, unix.ENOSYS) {
		return nil, &AttachError{Pid: pid, Err: err}
	}
	// Old kernel. Probe with the null signal and hold the bare pid.
	// Non-positive pids address process groups through kill(2) and are
	// never valid targets.
	log.Debug("pidfd_open unavailable, falling back to kill", "pid", pid)
	if pid <= 0 {
		return nil, &AttachError{Pid: pid, Err: unix.EINVAL}
	}
	if err := unix.Kill(pid, 0); err != nil {
		return nil, &AttachError{Pid: pid, Err: err}
	}
	return &Process{pid: pid, fd: -1}, nil
}

// Break requests a debug-break event in the target. SIGTRAP is the
// signal a breakpoint raises, so an attached debugger reports a break
// and an undebugged target dies on a trace trap.
func (p *Process) Break() error {
	if p.closed {
		return &BreakError{Pid: p.pid, Err: syscall.EBADF}
	}
	var err error
	if p.fd >= 0 {
		err = unix.PidfdSendSignal(p.fd, unix.SIGTRAP, nil, 0)
	} else {
		err = unix.Kill(p.pid, unix.SIGTRAP)
	}
	if err != nil {
		return &BreakError{Pid: p.pid, Err: err}
	}
	return nil
}

// Close releases the handle. Further calls are no-ops.
func (p *Process) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	log.Debug("Released process handle", "pid", p.pid)
	if p.fd >= 0 {
		return unix.Close(p.fd)
	}
	return nil
}

// Pid returns the target's process identifier.
func (p *Process) Pid() int { return p.pid }
