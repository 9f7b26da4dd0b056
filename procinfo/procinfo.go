// Package procinfo inspects the OS process table. It backs the harness
// tooling that locates targets, checks their liveness, and cleans up
// strays after crashed runs.
package procinfo

import (
	"strings"

	"github.com/shirou/gopsutil/process"
)

// Info describes one running process at sample time.
type Info struct {
	Pid        int32
	Name       string
	Exe        string
	Cmdline    string
	Status     string
	CPUPercent float64
	MemPercent float32
}

// List samples every visible process. Entries that vanish or deny
// access mid-walk are skipped rather than failing the walk.
func List() ([]Info, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	infos := make([]Info, 0, len(procs))
	for _, p := range procs {
		info, err := describe(p)
		if err != nil {
			continue
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// describe samples one process. Only the name is required; the other
// fields stay zero where the platform denies them.
func describe(p *process.Process) (Info, error) {
	name, err := p.Name()
	if err != nil {
		return Info{}, err
	}
	info := Info{Pid: p.Pid, Name: name}
	if exe, err := p.Exe(); err == nil {
		info.Exe = exe
	}
	if cmdline, err := p.Cmdline(); err == nil {
		info.Cmdline = cmdline
	}
	if status, err := p.Status(); err == nil {
		info.Status = status
	}
	if cpu, err := p.CPUPercent(); err == nil {
		info.CPUPercent = cpu
	}
	if mem, err := p.MemoryPercent(); err == nil {
		info.MemPercent = mem
	}
	return info, nil
}

// Find returns the processes whose name contains name, matched without
// case.
func Find(name string) ([]Info, error) {
	all, err := List()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(name)
	var matches []Info
	for _, info := range all {
		if strings.Contains(strings.ToLower(info.Name), needle) {
			matches = append(matches, info)
		}
	}
	return matches, nil
}

// Get describes the process with the given pid. ok is false when the
// process is gone or inaccessible.
func Get(pid int32) (Info, bool) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return Info{}, false
	}
	info, err := describe(p)
	if err != nil {
		return Info{}, false
	}
	return info, true
}

// Running reports whether pid denotes a live process.
func Running(pid int32) bool {
	ok, err := process.PidExists(pid)
	return err == nil && ok
}

// Kill ends the process with pid: graceful termination by default, or
// an unconditional kill when force is set.
func Kill(pid int32, force bool) error {
	p, err := process.NewProcess(pid)
	if err != nil {
		return err
	}
	if force {
		return p.Kill()
	}
	return p.Terminate()
}
