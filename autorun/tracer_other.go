//go:build !linux

package autorun

// TracerPid reports the pid of the process tracing this one, if any.
// Only procfs exposes the tracer, so everywhere but Linux the answer is
// unknown.
func TracerPid() (int, bool) {
	return 0, false
}
