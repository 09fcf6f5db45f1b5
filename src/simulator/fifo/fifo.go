package fifo

import (
	"errors"
	"fmt"
)

// Config holds the construction-time parameters of the FIFO.
type Config struct {
	// Depth is the number of storage slots. It must be a power of two:
	// the phase-bit full/empty scheme relies on the index field's natural
	// wraparound at 2^k coinciding with the capacity boundary.
	Depth uint64

	// DataWidth is the stored word width in bits, 1 to 64. Input words are
	// truncated to this width on write.
	DataWidth int
}

// Input carries the control and data signals sampled at the start of a tick.
type Input struct {
	Reset        bool
	ChipSelect   bool
	WriteRequest bool
	ReadRequest  bool
	Data         uint64
}

// Output carries the signals observable after a tick commits: the output
// register and the full/empty status of the committed pointer pair.
type Output struct {
	Data  uint64
	Empty bool
	Full  bool
}

var (
	ErrZeroDepth        = errors.New("fifo depth must be positive")
	ErrDepthNotPowerOf2 = errors.New("fifo depth must be a power of two")
)

// Fifo is a fixed-capacity single-producer/single-consumer circular buffer
// advanced one discrete tick at a time. Full and empty are derived from the
// write/read pointer pair alone; there is no occupancy counter.
//
// A Fifo instance owns its state exclusively and is not safe for concurrent
// Tick calls: the pre-tick-snapshot contract assumes exactly one invocation
// in flight at a time.
type Fifo struct {
	config   Config
	storage  *Storage
	writePtr Pointer
	readPtr  Pointer

	// output holds the most recently read word. A read issued this tick
	// lands here when the tick commits, so the value is observable starting
	// the next tick. It is deliberately not cleared by reset.
	output uint64
}

// NewFifo constructs a zero-initialized FIFO. Misconfiguration is rejected
// here so that Tick never has to fault.
func NewFifo(config Config) (*Fifo, error) {
	if config.Depth == 0 {
		return nil, ErrZeroDepth
	}
	if config.Depth&(config.Depth-1) != 0 {
		return nil, ErrDepthNotPowerOf2
	}
	if config.DataWidth < 1 || config.DataWidth > 64 {
		return nil, fmt.Errorf("fifo data width %d out of range [1, 64]", config.DataWidth)
	}

	return &Fifo{
		config:   config,
		storage:  NewStorage(config.Depth, config.DataWidth),
		writePtr: NewPointer(config.Depth),
		readPtr:  NewPointer(config.Depth),
	}, nil
}

// Depth returns the configured number of slots.
func (f *Fifo) Depth() uint64 {
	return f.config.Depth
}

// DataWidth returns the configured word width in bits.
func (f *Fifo) DataWidth() int {
	return f.config.DataWidth
}

// Empty reports whether the committed pointer pair marks the FIFO empty
// (index and phase both equal).
func (f *Fifo) Empty() bool {
	return f.writePtr.Equal(f.readPtr)
}

// Full reports whether the committed pointer pair marks the FIFO full
// (same index, opposite phase).
func (f *Fifo) Full() bool {
	return f.writePtr.Opposite(f.readPtr)
}

// Occupancy returns the number of valid unread words, derived from the
// pointer distance modulo 2*depth. It is always in [0, depth].
func (f *Fifo) Occupancy() uint64 {
	return f.writePtr.Distance(f.readPtr)
}

// OutputRegister returns the committed output register value. It is stale
// until the first successful read and after any blocked read.
func (f *Fifo) OutputRegister() uint64 {
	return f.output
}

// WritePointer returns the committed write pointer.
func (f *Fifo) WritePointer() Pointer {
	return f.writePtr
}

// ReadPointer returns the committed read pointer.
func (f *Fifo) ReadPointer() Pointer {
	return f.readPtr
}

// Tick advances the FIFO by one discrete step.
//
// All decisions derive from a snapshot of the state as it stood before the
// tick, the way concurrently clocked registers read old values and commit
// together:
//
//   - a write happens iff chip-select and write-request are asserted and the
//     FIFO was not full at the start of the tick;
//   - a read happens iff chip-select and read-request are asserted and the
//     FIFO was not empty at the start of the tick;
//   - both may happen in the same tick and advance both pointers;
//   - reset overrides both and rewinds the pointers to zero, leaving storage
//     and the output register untouched;
//   - a blocked write or read is a silent no-op, never a fault.
//
// The read captures the slot as it stood before this tick's write. The
// returned Output reflects the committed post-tick registers, which is what
// a harness sampling after the clock edge observes.
func (f *Fifo) Tick(in Input) Output {
	write := f.writePtr
	read := f.readPtr
	full := write.Opposite(read)
	empty := write.Equal(read)

	nextWrite := write
	nextRead := read
	nextOutput := f.output

	if in.Reset {
		nextWrite = NewPointer(f.config.Depth)
		nextRead = NewPointer(f.config.Depth)
	} else if in.ChipSelect {
		// Capture the read value before applying the write so a same-tick
		// write can never leak into this tick's output. The slots can only
		// coincide when the FIFO is empty or full, and then one of the two
		// operations is blocked anyway.
		if in.ReadRequest && !empty {
			nextOutput = f.storage.Load(read.Index())
			nextRead = read.Next()
		}
		if in.WriteRequest && !full {
			f.storage.Store(write.Index(), in.Data)
			nextWrite = write.Next()
		}
	}

	f.writePtr = nextWrite
	f.readPtr = nextRead
	f.output = nextOutput

	return Output{
		Data:  f.output,
		Empty: f.Empty(),
		Full:  f.Full(),
	}
}
