// build +gofuzz

package fault

import (
	"fmt"

	"github.com/faultline-dev/faultline/fault"
	fuzz "github.com/google/gofuzz"
)

func Fuzz(input []byte) int {
	var (
		fuzzer   = fuzz.NewFromGoFuzz(input)
		selector int
	)
	fuzzer.Fuzz(&selector)
	kind := fault.Lookup(selector)
	if fault.Known(selector) && kind != fault.Kind(selector) {
		panic(fmt.Sprintf("known selector %d resolved to %v", selector, kind))
	}
	if !fault.Known(selector) && kind != fault.DefaultKind {
		panic(fmt.Sprintf("unknown selector %d resolved to %v, not the fallback", selector, kind))
	}
	if kind.String() == "" {
		panic(fmt.Sprintf("kind %d has no name", int(kind)))
	}
	return 0
}
