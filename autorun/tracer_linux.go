//go:build linux

package autorun

import (
	"os"
	"strconv"
	"strings"
)

// TracerPid reports the pid of the process tracing this one, if any. It
// reads the TracerPid field from /proc/self/status; the kernel keeps it
// at zero while no ptrace peer is attached. The result is informational
// only, the sequence never changes behavior under a debugger.
func TracerPid() (int, bool) {
	data, err := os.ReadFile("/proc/self/status")
	if err != nil {
		return 0, false
	}
	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "TracerPid:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, false
		}
		pid, err := strconv.Atoi(fields[1])
		if err != nil || pid == 0 {
			return 0, false
		}
		return pid, true
	}
	return 0, false
}
