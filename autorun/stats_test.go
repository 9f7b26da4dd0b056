package autorun

import (
	"bytes"
	"testing"
)

// The unattended run aggregates this exact fixture; external debugger
// transcripts assert on the derived figures.
func TestComputeFixture(t *testing.T) {
	stats := Compute(DefaultSeries)
	if stats.Sum != 243 {
		t.Errorf("Sum = %d, want 243", stats.Sum)
	}
	if stats.Min != 40 {
		t.Errorf("Min = %d, want 40", stats.Min)
	}
	if stats.Max != 129 {
		t.Errorf("Max = %d, want 129", stats.Max)
	}
	if stats.Average != 81.0 {
		t.Errorf("Average = %g, want 81", stats.Average)
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name   string
		series []int
		want   Stats
	}{
		{"fixture", []int{40, 74, 129}, Stats{Sum: 243, Min: 40, Max: 129, Average: 81}},
		{"single", []int{7}, Stats{Sum: 7, Min: 7, Max: 7, Average: 7}},
		{"negatives", []int{-4, 2}, Stats{Sum: -2, Min: -4, Max: 2, Average: -1}},
		{"menu series", []int{1, 2, 3, 4, 5}, Stats{Sum: 15, Min: 1, Max: 5, Average: 3}},
		{"empty", nil, Stats{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(tt.series); got != tt.want {
				t.Errorf("Compute(%v) = %+v, want %+v", tt.series, got, tt.want)
			}
		})
	}
}

func TestStatsFprint(t *testing.T) {
	var buf bytes.Buffer
	Compute(DefaultSeries).Fprint(&buf)
	want := "Sum: 243\nMin: 40\nMax: 129\nAverage: 81\n"
	if buf.String() != want {
		t.Errorf("Fprint rendered %q, want %q", buf.String(), want)
	}
}
