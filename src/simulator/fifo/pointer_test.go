package fifo

import "testing"

func TestPointerWrapFlipsPhase(t *testing.T) {
	p := NewPointer(4)
	if p.Index() != 0 || p.Phase() != 0 {
		t.Fatalf("fresh pointer mismatch: want index 0 phase 0, got index %d phase %d", p.Index(), p.Phase())
	}

	for i := 0; i < 4; i++ {
		p = p.Next()
	}
	if p.Index() != 0 {
		t.Fatalf("index after one lap: want 0, got %d", p.Index())
	}
	if p.Phase() != 1 {
		t.Fatalf("phase after one lap: want 1, got %d", p.Phase())
	}

	for i := 0; i < 4; i++ {
		p = p.Next()
	}
	if p.Raw() != 0 {
		t.Fatalf("raw value after two laps: want 0, got %d", p.Raw())
	}
}

func TestPointerEqualAndOpposite(t *testing.T) {
	w := NewPointer(8)
	r := NewPointer(8)

	if !w.Equal(r) {
		t.Fatalf("fresh pointers should be equal")
	}
	if w.Opposite(r) {
		t.Fatalf("fresh pointers should not be opposite")
	}

	for i := 0; i < 8; i++ {
		w = w.Next()
	}
	if w.Equal(r) {
		t.Fatalf("pointers a lap apart should not be equal")
	}
	if !w.Opposite(r) {
		t.Fatalf("pointers a lap apart should be opposite: same index, differing phase")
	}
}

func TestPointerDistance(t *testing.T) {
	w := NewPointer(4)
	r := NewPointer(4)

	for i := 0; i < 3; i++ {
		w = w.Next()
	}
	if d := w.Distance(r); d != 3 {
		t.Fatalf("distance mismatch: want 3, got %d", d)
	}

	// Distance stays correct across the modulo-2*depth wrap.
	for i := 0; i < 6; i++ {
		w = w.Next()
		r = r.Next()
	}
	if d := w.Distance(r); d != 3 {
		t.Fatalf("distance after wrap mismatch: want 3, got %d", d)
	}
}
