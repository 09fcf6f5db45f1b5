package fifo

// Pointer models a FIFO read or write pointer that is one bit wider than a
// slot index. The raw value counts monotonically modulo 2*depth: the low
// log2(depth) bits address storage and the extra high bit is the wrap phase.
// Keeping index and phase inside one counter means the phase can never fall
// out of step with the index; it flips exactly when the index wraps.
//
// Pointer is a value type so that a tick can snapshot the pointer pair by
// plain assignment and commit the advanced copies in one step.
type Pointer struct {
	value uint64
	depth uint64
}

// NewPointer returns a pointer at index 0, phase 0 for the given depth.
// Depth must be a power of two; the FIFO constructor enforces this before
// any pointer is created.
func NewPointer(depth uint64) Pointer {
	return Pointer{depth: depth}
}

// Raw returns the full counter value in [0, 2*depth).
func (p Pointer) Raw() uint64 {
	return p.value
}

// Index returns the storage slot addressed by the pointer.
func (p Pointer) Index() uint64 {
	return p.value & (p.depth - 1)
}

// Phase returns the wrap phase bit (0 or 1).
func (p Pointer) Phase() uint64 {
	if p.value&p.depth != 0 {
		return 1
	}
	return 0
}

// Next returns the pointer advanced by one slot, wrapping modulo 2*depth.
// The phase bit flips automatically when the index field wraps.
func (p Pointer) Next() Pointer {
	return Pointer{
		value: (p.value + 1) & (2*p.depth - 1),
		depth: p.depth,
	}
}

// Equal reports whether both index and phase match. A write pointer equal to
// the read pointer means the FIFO is empty.
func (p Pointer) Equal(other Pointer) bool {
	return p.value == other.value
}

// Opposite reports whether the pointers address the same slot on opposite
// wrap phases. A write pointer opposite the read pointer means the FIFO is
// full: the writer has lapped the reader by exactly one wrap.
func (p Pointer) Opposite(other Pointer) bool {
	return p.value == other.value^p.depth
}

// Distance returns how far this pointer has advanced past other, modulo
// 2*depth. With the write pointer as receiver and the read pointer as
// argument this is the FIFO occupancy.
func (p Pointer) Distance(other Pointer) uint64 {
	return (p.value - other.value) & (2*p.depth - 1)
}
