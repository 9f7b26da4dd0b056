package autorun

import (
	"bytes"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	log "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faultline-dev/faultline/fault"
)

func TestMain(m *testing.M) {
	log.Root().SetHandler(log.DiscardHandler())
	os.Exit(m.Run())
}

func TestSequencerDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, DefaultAttachDelay, s.AttachDelay)
	assert.Equal(t, DefaultTriggerDelay, s.TriggerDelay)
	assert.Equal(t, DefaultSeries, s.Series)
	assert.NotEqual(t, uuid.UUID{}, s.RunID)
}

// The two-delay structure with the warmup in between is the contract
// external scripts key their attach timing to.
func TestSequencerOrdering(t *testing.T) {
	var (
		events []string
		out    bytes.Buffer
	)
	s := New()
	s.stdout = &out
	s.sleep = func(d time.Duration) {
		events = append(events, fmt.Sprintf("sleep %v", d))
	}
	s.onPhase = func(p Phase) {
		events = append(events, "phase "+p.String())
	}
	s.trigger = func(k fault.Kind) {
		events = append(events, "trigger "+k.String())
	}

	s.Run()

	require.Equal(t, []string{
		"sleep 5s",
		"phase warming",
		"phase waiting",
		"sleep 2s",
		"phase triggering",
		"trigger nil pointer dereference",
	}, events)
	assert.Equal(t, "Sum: 243\nMin: 40\nMax: 129\nAverage: 81\n", out.String())
}

func TestSequencerStatsBeforeFault(t *testing.T) {
	var out bytes.Buffer
	s := New()
	s.stdout = &out
	s.sleep = func(time.Duration) {}
	s.trigger = func(fault.Kind) {
		assert.Contains(t, out.String(), "Sum: 243", "warmup output must precede the fault")
	}
	s.Run()
	assert.Equal(t, Triggering, s.phase)
}

func TestSequencerCustomSeries(t *testing.T) {
	var out bytes.Buffer
	s := New()
	s.stdout = &out
	s.sleep = func(time.Duration) {}
	s.trigger = func(fault.Kind) {}
	s.Series = []int{1, 2, 3, 4, 5}
	s.Run()
	assert.Equal(t, "Sum: 15\nMin: 1\nMax: 5\nAverage: 3\n", out.String())
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Idle, "idle"},
		{Warming, "warming"},
		{Waiting, "waiting"},
		{Triggering, "triggering"},
		{Phase(9), "Phase(9)"},
	}
	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(tt.phase), got, tt.want)
		}
	}
}
