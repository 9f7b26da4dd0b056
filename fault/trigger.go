package fault

import (
	"unsafe"

	log "github.com/inconshreveable/log15"
)

// The trigger bodies operate on package-level state so the compiler
// cannot prove the operations invalid and refuse to build them. Nothing
// ever assigns to nullTarget or zero.
var (
	nullTarget *int
	zero       int
	oobIndex   = 10
	sequence   = [5]int32{1, 2, 3, 4, 5}
	oobSink    int32
)

// Trigger executes the fault action for kind and, for genuine faults,
// does not return: the runtime or the OS kills the process and an
// attached debugger observes the raw event. Unmapped kinds execute the
// catalog default.
//
// OutOfBounds is the one action that may return. The read bypasses the
// runtime bounds check, so depending on what sits past the array it
// either faults or silently yields adjacent memory. That ambiguity is
// part of the contract and must not be normalized into a checked error.
func Trigger(kind Kind) {
	log.Debug("Executing fault action", "kind", kind, "selector", int(kind))
	switch kind {
	case DivisionByZero:
		divideByZero()
	case StackOverflow:
		overflowStack(0)
	case OutOfBounds:
		readOutOfBounds()
	default:
		dereferenceNil()
	}
}

// The trigger functions are noinline so registers spill before the
// faulting instruction and the debugger sees a sane frame.

//go:noinline
func dereferenceNil() {
	*nullTarget = 42
}

//go:noinline
func divideByZero() {
	quotient := 42 / zero
	log.Debug("Quotient computed", "quotient", quotient)
}

//go:noinline
func overflowStack(depth int) int {
	// No base case. The addition after the call keeps the frame live
	// across the recursion.
	return overflowStack(depth+1) + 1
}

//go:noinline
func readOutOfBounds() {
	base := unsafe.Pointer(&sequence[0])
	oobSink = *(*int32)(unsafe.Add(base, uintptr(oobIndex)*unsafe.Sizeof(sequence[0])))
	log.Debug("Out-of-bounds read survived", "index", oobIndex, "value", oobSink)
}
