package signal

import "testing"

func TestNegativeIndexEquivalence(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3, 4, 5})
	n := s.Len()
	for i := 0; i < n; i++ {
		if s.At(i) != s.At(i-n) {
			t.Fatalf("At(%d) = %v, At(%d) = %v; want equal", i, s.At(i), i-n, s.At(i-n))
		}
	}
}

func TestAt(t *testing.T) {
	s := FromSlice([]float64{10, 20, 30})
	if got := s.At(0); got != 10 {
		t.Fatalf("At(0) = %v, want 10", got)
	}
	if got := s.At(-1); got != 30 {
		t.Fatalf("At(-1) = %v, want 30", got)
	}
	if got := s.At(-3); got != 10 {
		t.Fatalf("At(-3) = %v, want 10", got)
	}
}

func TestSetAt(t *testing.T) {
	s := New(3)
	s.SetAt(1, 7)
	s.SetAt(-1, 9)
	checkSamples(t, s, []float64{0, 7, 9})
}

func TestIndexOutOfRangePanics(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})
	mustPanic(t, func() { s.At(3) })
	mustPanic(t, func() { s.At(-4) })
	mustPanic(t, func() { s.SetAt(3, 0) })
	mustPanic(t, func() { New(0).At(0) })
}
