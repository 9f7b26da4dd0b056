package autorun

import (
	"fmt"
	"io"
)

// DefaultSeries is the fixture the unattended run aggregates. External
// test transcripts assert on the figures derived from it, so the values
// are load-bearing.
var DefaultSeries = []int{40, 74, 129}

// Stats holds the aggregate figures of one warmup pass. The pass exists
// to give an attached debugger a benign, steppable code path, so the
// computation stays a single plain loop.
type Stats struct {
	Sum     int
	Min     int
	Max     int
	Average float64
}

// Compute aggregates series in one pass. An empty series yields the
// zero figures.
func Compute(series []int) Stats {
	if len(series) == 0 {
		return Stats{}
	}
	s := Stats{Min: series[0], Max: series[0]}
	for _, n := range series {
		s.Sum += n
		if n < s.Min {
			s.Min = n
		}
		if n > s.Max {
			s.Max = n
		}
	}
	s.Average = float64(s.Sum) / float64(len(series))
	return s
}

// Fprint renders the figures in the fixed four-line transcript order.
func (s Stats) Fprint(w io.Writer) {
	fmt.Fprintf(w, "Sum: %d\n", s.Sum)
	fmt.Fprintf(w, "Min: %d\n", s.Min)
	fmt.Fprintf(w, "Max: %d\n", s.Max)
	fmt.Fprintf(w, "Average: %g\n", s.Average)
}
