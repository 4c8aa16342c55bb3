package signal

import (
	"errors"
	"testing"
)

func TestDiff(t *testing.T) {
	d, err := FromSlice([]float64{1, 2, 3, 4}).Diff()
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	checkSamples(t, d, []float64{1, 1, 1})

	d, err = FromSlice([]float64{1, 3, 6, 10}).Diff()
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	checkSamples(t, d, []float64{2, 3, 4})
}

func TestDiffLength(t *testing.T) {
	d, err := Linspace(0, 1, 17).Diff()
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if d.Len() != 16 {
		t.Fatalf("Len() = %d, want 16", d.Len())
	}
}

func TestDiffConstantIsZero(t *testing.T) {
	d, err := Constant(42, 5).Diff()
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	checkSamples(t, d, []float64{0, 0, 0, 0})
}

func TestDiffShortInput(t *testing.T) {
	if _, err := New(0).Diff(); !errors.Is(err, ErrShortLength) {
		t.Fatalf("Diff on empty: err = %v, want ErrShortLength", err)
	}
	if _, err := New(1).Diff(); !errors.Is(err, ErrShortLength) {
		t.Fatalf("Diff on length 1: err = %v, want ErrShortLength", err)
	}
}

func TestDiffLeavesSourceUntouched(t *testing.T) {
	s := FromSlice([]float64{1, 2, 4})
	if _, err := s.Diff(); err != nil {
		t.Fatalf("Diff: %v", err)
	}
	checkSamples(t, s, []float64{1, 2, 4})
}

func TestRev(t *testing.T) {
	checkSamples(t, FromSlice([]float64{1, 2, 3}).Rev(), []float64{3, 2, 1})
	checkSamples(t, FromSlice([]float64{7}).Rev(), []float64{7})
	if n := New(0).Rev().Len(); n != 0 {
		t.Fatalf("Len() = %d, want 0", n)
	}
}

func TestRevIsIndependentCopy(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})
	r := s.Rev()
	r.SetAt(0, 99)
	checkSamples(t, s, []float64{1, 2, 3})
}
