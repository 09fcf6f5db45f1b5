package fifo

// Storage is the fixed-size word array backing the FIFO. Words are masked to
// the configured data width on store, mirroring a memory whose cells are
// physically that wide. Storage is never cleared after construction: reset
// only rewinds the pointers, so stale words stay physically present until
// overwritten.
type Storage struct {
	words []uint64
	mask  uint64
}

// NewStorage constructs zero-initialized storage with depth slots of
// dataWidth-bit words. The FIFO constructor validates both arguments.
func NewStorage(depth uint64, dataWidth int) *Storage {
	var mask uint64
	if dataWidth >= 64 {
		mask = ^uint64(0)
	} else {
		mask = (uint64(1) << uint(dataWidth)) - 1
	}

	return &Storage{
		words: make([]uint64, depth),
		mask:  mask,
	}
}

// Depth returns the number of slots.
func (s *Storage) Depth() uint64 {
	return uint64(len(s.words))
}

// Mask returns the data width mask applied on store.
func (s *Storage) Mask() uint64 {
	return s.mask
}

// Load returns the word at the given slot index.
func (s *Storage) Load(index uint64) uint64 {
	return s.words[index]
}

// Store writes the word at the given slot index, truncated to the data
// width.
func (s *Storage) Store(index uint64, value uint64) {
	s.words[index] = value & s.mask
}
