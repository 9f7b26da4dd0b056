//go:build windows

package debugbreak

import (
	"syscall"

	log "github.com/inconshreveable/log15"
	"golang.org/x/sys/windows"
)

// Full access, the rights mask native debug tooling requests before
// controlling a target.
const processAllAccess = windows.STANDARD_RIGHTS_REQUIRED | windows.SYNCHRONIZE | 0xffff

var (
	modkernel32           = windows.NewLazySystemDLL("kernel32.dll")
	procDebugBreakProcess = modkernel32.NewProc("DebugBreakProcess")
)

// Process is an exclusively owned handle on a foreign process.
type Process struct {
	pid    int
	handle windows.Handle
	closed bool
}

// Open acquires a full-access handle on pid.
func Open(pid int) (*Process, error) {
	h, err := windows.OpenProcess(processAllAccess, false, uint32(pid))
	if err != nil {
		return nil, &AttachError{Pid: pid, Err: err}
	}
	return &Process{pid: pid, handle: h}, nil
}

// Break asks the kernel to raise a breakpoint in the target, the same
// event an in-process DebugBreak raises.
func (p *Process) Break() error {
	if p.closed {
		return &BreakError{Pid: p.pid, Err: syscall.EBADF}
	}
	r1, _, err := procDebugBreakProcess.Call(uintptr(p.handle))
	if r1 == 0 {
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
	return windows.CloseHandle(p.handle)
}

// Pid returns the target's process identifier.
func (p *Process) Pid() int { return p.pid }
