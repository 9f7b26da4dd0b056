// Package autorun drives the unattended test mode: announce the run,
// wait out a debugger-attach window, walk a benign computation, wait
// again, then crash on purpose.
package autorun

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	log "github.com/inconshreveable/log15"

	"github.com/faultline-dev/faultline/debuglog"
	"github.com/faultline-dev/faultline/fault"
)

// Phase is the strictly forward progression of an unattended run. The
// final phase has no successor: the fault destroys the process.
type Phase int

const (
	Idle Phase = iota
	Warming
	Waiting
	Triggering
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Warming:
		return "warming"
	case Waiting:
		return "waiting"
	case Triggering:
		return "triggering"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// The default delays are the contract: external scripts key their
// attach timing to a 5s window and a 2s pre-crash pause.
const (
	DefaultAttachDelay  = 5 * time.Second
	DefaultTriggerDelay = 2 * time.Second
)

// Sequencer runs the automated test sequence on the calling goroutine.
// There is no cancellation: once Run starts, the sequence ends in the
// deliberate fault or in an externally imposed termination.
type Sequencer struct {
	AttachDelay  time.Duration // window for an external debugger to attach
	TriggerDelay time.Duration // pause between warmup and fault
	Series       []int         // warmup fixture
	RunID        uuid.UUID     // correlates harness logs with debugger transcripts

	phase   Phase
	stdout  io.Writer
	sleep   func(time.Duration)
	trigger func(fault.Kind)
	onPhase func(Phase)
}

// New returns a sequencer with the contract timings and fixture.
func New() *Sequencer {
	id, err := uuid.NewRandom()
	if err != nil {
		panic(fmt.Sprintf("Could not create run uuid: %v", err))
	}
	return &Sequencer{
		AttachDelay:  DefaultAttachDelay,
		TriggerDelay: DefaultTriggerDelay,
		Series:       DefaultSeries,
		RunID:        id,
		stdout:       os.Stdout,
		sleep:        time.Sleep,
		trigger:      fault.Trigger,
	}
}

// Run executes the sequence and is not expected to return: the last
// phase triggers a nil dereference. The delays are blocking suspensions
// of the single thread of control, not yield points.
func (s *Sequencer) Run() {
	debuglog.Output(fmt.Sprintf("Running automated test mode, waiting for %v then starting.", s.AttachDelay))
	log.Info("Running automated test mode", "id", s.RunID, "attachwindow", s.AttachDelay, "crashdelay", s.TriggerDelay)

	s.sleep(s.AttachDelay)
	if pid, ok := TracerPid(); ok {
		log.Info("Tracer attached during the wait window", "tracer", pid)
	} else {
		log.Debug("No tracer visible after the wait window")
	}

	s.advance(Warming)
	stats := Compute(s.Series)
	stats.Fprint(s.stdout)
	log.Info("Warmup statistics computed", "sum", stats.Sum, "min", stats.Min, "max", stats.Max, "average", stats.Average)

	s.advance(Waiting)
	s.sleep(s.TriggerDelay)

	s.advance(Triggering)
	log.Info("Triggering the terminal fault", "kind", fault.NilDereference)
	s.trigger(fault.NilDereference)
}

func (s *Sequencer) advance(next Phase) {
	s.phase = next
	log.Debug("Sequence phase changed", "phase", next)
	if s.onPhase != nil {
		s.onPhase(next)
	}
}
