//go:build !windows

package debuglog

// Output delivers msg to the platform debug channel. There is no such
// channel outside Windows, so the message is dropped here and carried
// by the stderr log instead.
func Output(msg string) {
}
