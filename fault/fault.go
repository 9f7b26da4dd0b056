// Package fault enumerates the deliberately triggerable fault classes and
// executes them. Faults are terminal: nothing in this package recovers,
// rescues, or translates them, because the consumer is an external debugger
// watching the raw event.
package fault

import "fmt"

// Kind identifies one fault class. The numeric values double as the
// selector codes accepted on the command line and in the interactive
// menu; external test scripts dispatch on them, so they are stable.
type Kind int

const (
	NilDereference Kind = 1
	DivisionByZero Kind = 2
	StackOverflow  Kind = 3
	OutOfBounds    Kind = 4
)

// DefaultKind is where unknown selectors land. An unmatched selector is
// not an error: unattended debugger tests need a deterministic crash
// even for garbage input.
const DefaultKind = NilDereference

func (k Kind) String() string {
	switch k {
	case NilDereference:
		return "nil pointer dereference"
	case DivisionByZero:
		return "division by zero"
	case StackOverflow:
		return "stack overflow"
	case OutOfBounds:
		return "out-of-bounds read"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Lookup maps a selector to its fault kind. It is total: every selector
// resolves, with unmatched values falling back to DefaultKind.
func Lookup(selector int) Kind {
	if Known(selector) {
		return Kind(selector)
	}
	return DefaultKind
}

// Known reports whether selector maps to a kind without the default
// fallback. The interactive menu re-prompts on unknown selectors
// instead of defaulting, so it needs the distinction Lookup hides.
func Known(selector int) bool {
	return selector >= int(NilDereference) && selector <= int(OutOfBounds)
}

// Kinds returns the catalog in selector order.
func Kinds() []Kind {
	return []Kind{NilDereference, DivisionByZero, StackOverflow, OutOfBounds}
}
