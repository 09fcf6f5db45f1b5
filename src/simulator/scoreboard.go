package simulator

import (
	"fmt"

	"syncfifo/src/simulator/fifo"
)

// Scoreboard shadows the FIFO under test with a golden queue. Every tick it
// applies the same pre-tick write/read decisions to the queue and compares
// the core's observable outputs against it, so any pointer or status bug
// surfaces on the exact tick it happens.
type Scoreboard struct {
	depth uint64
	mask  uint64

	queue       []uint64
	output      uint64
	outputValid bool

	ticks         int64
	writes        int64
	reads         int64
	droppedWrites int64
	blockedReads  int64
	resets        int64
}

// NewScoreboard constructs a scoreboard for a FIFO of the given geometry.
func NewScoreboard(depth uint64, dataWidth int) *Scoreboard {
	mask := ^uint64(0)
	if dataWidth < 64 {
		mask = (uint64(1) << uint(dataWidth)) - 1
	}
	return &Scoreboard{depth: depth, mask: mask}
}

// Check advances the golden model with the tick's input and compares the
// core's output against it. The first mismatch is returned as an error.
func (s *Scoreboard) Check(tick int64, in fifo.Input, out fifo.Output) error {
	full := uint64(len(s.queue)) == s.depth
	empty := len(s.queue) == 0

	s.ticks++
	switch {
	case in.Reset:
		s.queue = s.queue[:0]
		s.resets++
	case in.ChipSelect:
		if in.ReadRequest {
			if empty {
				s.blockedReads++
			} else {
				s.output = s.queue[0]
				s.outputValid = true
				s.queue = s.queue[1:]
				s.reads++
			}
		}
		if in.WriteRequest {
			if full {
				s.droppedWrites++
			} else {
				s.queue = append(s.queue, in.Data&s.mask)
				s.writes++
			}
		}
	}

	wantEmpty := len(s.queue) == 0
	wantFull := uint64(len(s.queue)) == s.depth
	if out.Empty != wantEmpty || out.Full != wantFull {
		return fmt.Errorf("tick %d: status mismatch: want empty=%v full=%v, got empty=%v full=%v",
			tick, wantEmpty, wantFull, out.Empty, out.Full)
	}
	if s.outputValid && out.Data != s.output {
		return fmt.Errorf("tick %d: output mismatch: want %#x, got %#x", tick, s.output, out.Data)
	}
	return nil
}

// Occupancy returns the golden model's element count.
func (s *Scoreboard) Occupancy() uint64 {
	return uint64(len(s.queue))
}

// Summary returns the run counters as result file lines.
func (s *Scoreboard) Summary() []string {
	return []string{
		fmt.Sprintf("ticks: %d", s.ticks),
		fmt.Sprintf("writes_accepted: %d", s.writes),
		fmt.Sprintf("reads_accepted: %d", s.reads),
		fmt.Sprintf("writes_dropped_full: %d", s.droppedWrites),
		fmt.Sprintf("reads_blocked_empty: %d", s.blockedReads),
		fmt.Sprintf("resets: %d", s.resets),
		fmt.Sprintf("final_occupancy: %d", len(s.queue)),
	}
}
