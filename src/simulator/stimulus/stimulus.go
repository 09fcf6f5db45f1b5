package stimulus

import (
	"math/rand"

	"syncfifo/src/simulator/fifo"
)

// Generator produces one FIFO request per tick. Generators are deterministic
// for a given construction so that a failing run can be replayed from its
// recorded parameters.
type Generator interface {
	// Next returns the request to drive on the given tick.
	Next(tick int64) fifo.Input
	// Finished reports whether the generator has exhausted its sequence.
	// Open-ended generators always return false; the platform bounds those
	// runs with num_ticks.
	Finished(tick int64) bool
}

// Directed replays the fixed acceptance scenarios: an ordered write/drain
// burst, a saturation fill with one overflow write followed by a full drain,
// and a reset asserted together with both requests.
type Directed struct {
	sequence []fifo.Input
}

// NewDirected builds the scenario sequence for a FIFO of the given depth.
func NewDirected(depth uint64) *Directed {
	var sequence []fifo.Input

	// Ordered burst: three writes, three reads, one blocked read on empty.
	for _, v := range []uint64{1, 10, 100} {
		sequence = append(sequence, fifo.Input{ChipSelect: true, WriteRequest: true, Data: v})
	}
	for i := 0; i < 4; i++ {
		sequence = append(sequence, fifo.Input{ChipSelect: true, ReadRequest: true})
	}

	// Saturation: depth+1 writes back to back, then a full drain.
	for i := uint64(0); i <= depth; i++ {
		sequence = append(sequence, fifo.Input{ChipSelect: true, WriteRequest: true, Data: i + 1})
	}
	for i := uint64(0); i < depth; i++ {
		sequence = append(sequence, fifo.Input{ChipSelect: true, ReadRequest: true})
	}

	// Reset overriding simultaneous requests, then proof the FIFO still
	// accepts traffic.
	sequence = append(sequence,
		fifo.Input{ChipSelect: true, WriteRequest: true, Data: 0x3c},
		fifo.Input{Reset: true, ChipSelect: true, WriteRequest: true, ReadRequest: true, Data: 0x5a},
		fifo.Input{ChipSelect: true, WriteRequest: true, Data: 0x7e},
		fifo.Input{ChipSelect: true, ReadRequest: true},
	)

	return &Directed{sequence: sequence}
}

func (d *Directed) Next(tick int64) fifo.Input {
	if d.Finished(tick) {
		return fifo.Input{}
	}
	return d.sequence[tick]
}

func (d *Directed) Finished(tick int64) bool {
	return tick >= int64(len(d.sequence))
}

// Length returns the number of ticks in the directed sequence.
func (d *Directed) Length() int64 {
	return int64(len(d.sequence))
}

// Random drives a seeded request stream. Write and read requests are
// asserted with the configured densities (percent per tick); occasional
// deselect and reset pulses exercise the gating and rewind paths.
type Random struct {
	rng          *rand.Rand
	writeDensity int
	readDensity  int
}

func NewRandom(seed int64, writeDensity int, readDensity int) *Random {
	return &Random{
		rng:          rand.New(rand.NewSource(seed)),
		writeDensity: writeDensity,
		readDensity:  readDensity,
	}
}

func (r *Random) Next(tick int64) fifo.Input {
	return fifo.Input{
		Reset:        r.rng.Intn(64) == 0,
		ChipSelect:   r.rng.Intn(32) != 0,
		WriteRequest: r.rng.Intn(100) < r.writeDensity,
		ReadRequest:  r.rng.Intn(100) < r.readDensity,
		Data:         r.rng.Uint64(),
	}
}

func (r *Random) Finished(tick int64) bool {
	return false
}

// Soak leans on the saturation boundaries: it writes until the fill phase
// has issued depth+1 requests (one guaranteed overflow), then reads until
// the drain phase has issued depth+1 requests (one guaranteed underflow),
// and repeats.
type Soak struct {
	depth   uint64
	rng     *rand.Rand
	phase   uint64
	filling bool
}

func NewSoak(depth uint64, seed int64) *Soak {
	return &Soak{
		depth:   depth,
		rng:     rand.New(rand.NewSource(seed)),
		filling: true,
	}
}

func (s *Soak) Next(tick int64) fifo.Input {
	in := fifo.Input{ChipSelect: true, Data: s.rng.Uint64()}
	if s.filling {
		in.WriteRequest = true
	} else {
		in.ReadRequest = true
	}

	s.phase++
	if s.phase > s.depth {
		s.phase = 0
		s.filling = !s.filling
	}
	return in
}

func (s *Soak) Finished(tick int64) bool {
	return false
}
