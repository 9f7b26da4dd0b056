//go:build windows

package debuglog

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	modkernel32            = windows.NewLazySystemDLL("kernel32.dll")
	procOutputDebugStringW = modkernel32.NewProc("OutputDebugStringW")
)

// Output delivers msg to any attached debugger's transcript. The
// channel is fire-and-forget, so conversion failures are dropped.
func Output(msg string) {
	p, err := windows.UTF16PtrFromString(msg)
	if err != nil {
		return
	}
	procOutputDebugStringW.Call(uintptr(unsafe.Pointer(p)))
}
