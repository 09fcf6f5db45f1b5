package stimulus

import "testing"

func TestDirectedSequenceShape(t *testing.T) {
	depth := uint64(8)
	d := NewDirected(depth)

	// Ordered burst (7) + saturation fill and drain (2*depth+1) + reset
	// scenario (4).
	want := int64(7 + 2*int(depth) + 1 + 4)
	if got := d.Length(); got != want {
		t.Fatalf("directed length mismatch: want %d, got %d", want, got)
	}

	if d.Finished(0) {
		t.Fatalf("directed generator finished before the first tick")
	}
	if !d.Finished(d.Length()) {
		t.Fatalf("directed generator should be finished at tick %d", d.Length())
	}

	first := d.Next(0)
	if !first.WriteRequest || !first.ChipSelect || first.Data != 1 {
		t.Fatalf("unexpected first request: %+v", first)
	}
}

func TestDirectedContainsResetOverride(t *testing.T) {
	d := NewDirected(4)

	found := false
	for tick := int64(0); tick < d.Length(); tick++ {
		in := d.Next(tick)
		if in.Reset && in.WriteRequest && in.ReadRequest {
			found = true
		}
	}
	if !found {
		t.Fatalf("directed sequence lacks a reset overriding simultaneous requests")
	}
}

func TestRandomIsDeterministicPerSeed(t *testing.T) {
	a := NewRandom(7, 60, 40)
	b := NewRandom(7, 60, 40)

	for tick := int64(0); tick < 200; tick++ {
		if a.Next(tick) != b.Next(tick) {
			t.Fatalf("tick %d: same seed produced different requests", tick)
		}
	}
}

func TestRandomDensityExtremes(t *testing.T) {
	g := NewRandom(1, 0, 100)
	for tick := int64(0); tick < 100; tick++ {
		in := g.Next(tick)
		if in.WriteRequest {
			t.Fatalf("tick %d: write asserted at density 0", tick)
		}
		if !in.ReadRequest {
			t.Fatalf("tick %d: read not asserted at density 100", tick)
		}
	}
}

func TestSoakAlternatesFillAndDrain(t *testing.T) {
	depth := uint64(4)
	g := NewSoak(depth, 1)

	// First phase: depth+1 write requests, then depth+1 read requests.
	for i := uint64(0); i <= depth; i++ {
		in := g.Next(int64(i))
		if !in.WriteRequest || in.ReadRequest {
			t.Fatalf("fill tick %d: want write-only request, got %+v", i, in)
		}
	}
	for i := uint64(0); i <= depth; i++ {
		in := g.Next(int64(depth + 1 + i))
		if !in.ReadRequest || in.WriteRequest {
			t.Fatalf("drain tick %d: want read-only request, got %+v", i, in)
		}
	}
}
