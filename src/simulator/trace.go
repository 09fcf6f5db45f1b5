package simulator

import (
	"fmt"

	"syncfifo/src/simulator/fifo"
)

// TraceRecorder captures one line of signal state per tick for post-mortem
// inspection. Recording is opt-in: a disabled recorder costs nothing on the
// tick path.
type TraceRecorder struct {
	enabled bool
	lines   []string
}

func NewTraceRecorder(enabled bool) *TraceRecorder {
	return &TraceRecorder{enabled: enabled}
}

// Enabled reports whether the recorder captures ticks.
func (t *TraceRecorder) Enabled() bool {
	return t.enabled
}

// Record appends a formatted line of the tick's inputs and committed
// outputs.
func (t *TraceRecorder) Record(tick int64, in fifo.Input, out fifo.Output) {
	if !t.enabled {
		return
	}

	t.lines = append(t.lines, fmt.Sprintf(
		"tick=%d rst=%s cs=%s wr=%s rd=%s din=%#x dout=%#x empty=%s full=%s",
		tick, bit(in.Reset), bit(in.ChipSelect), bit(in.WriteRequest), bit(in.ReadRequest),
		in.Data, out.Data, bit(out.Empty), bit(out.Full)))
}

// Lines returns the recorded trace.
func (t *TraceRecorder) Lines() []string {
	return t.lines
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
