package signal

import (
	"errors"
	"math"
	"testing"
)

func TestPadConstBoth(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})
	padded, err := s.PadConst(Both, 0, 2)
	if err != nil {
		t.Fatalf("PadConst: %v", err)
	}
	checkSamples(t, padded, []float64{0, 0, 1, 2, 3, 0, 0})
	checkSamples(t, s, []float64{1, 2, 3})
}

func TestPadConstLeftRight(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})

	left, err := s.PadConst(Left, 7, 2)
	if err != nil {
		t.Fatalf("PadConst: %v", err)
	}
	checkSamples(t, left, []float64{7, 7, 1, 2, 3})

	right, err := s.PadConst(Right, 7, 2)
	if err != nil {
		t.Fatalf("PadConst: %v", err)
	}
	checkSamples(t, right, []float64{1, 2, 3, 7, 7})
}

func TestPadConstZeroWidth(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})
	padded, err := s.PadConst(Both, 9, 0)
	if err != nil {
		t.Fatalf("PadConst: %v", err)
	}
	checkSamples(t, padded, []float64{1, 2, 3})
}

func TestPadConstEmptySource(t *testing.T) {
	padded, err := New(0).PadConst(Right, 5, 3)
	if err != nil {
		t.Fatalf("PadConst: %v", err)
	}
	checkSamples(t, padded, []float64{5, 5, 5})
}

func TestPadConstTooLarge(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})
	if _, err := s.PadConst(Right, 0, math.MaxInt); !errors.Is(err, ErrResultTooLarge) {
		t.Fatalf("err = %v, want ErrResultTooLarge", err)
	}
	if _, err := s.PadConst(Both, 0, math.MaxInt/2+1); !errors.Is(err, ErrResultTooLarge) {
		t.Fatalf("err = %v, want ErrResultTooLarge", err)
	}
}

func TestPadWrapFullTiles(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})

	right, err := s.PadWrap(Right, 3)
	if err != nil {
		t.Fatalf("PadWrap: %v", err)
	}
	checkSamples(t, right, []float64{1, 2, 3, 1, 2, 3})

	left, err := s.PadWrap(Left, 3)
	if err != nil {
		t.Fatalf("PadWrap: %v", err)
	}
	checkSamples(t, left, []float64{1, 2, 3, 1, 2, 3})

	both, err := s.PadWrap(Both, 3)
	if err != nil {
		t.Fatalf("PadWrap: %v", err)
	}
	checkSamples(t, both, []float64{1, 2, 3, 1, 2, 3, 1, 2, 3})
}

func TestPadWrapMultipleTiles(t *testing.T) {
	s := FromSlice([]float64{1, 2})
	padded, err := s.PadWrap(Right, 6)
	if err != nil {
		t.Fatalf("PadWrap: %v", err)
	}
	checkSamples(t, padded, []float64{1, 2, 1, 2, 1, 2, 1, 2})
}

func TestPadWrapPartialTiles(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})

	tests := []struct {
		name  string
		side  Side
		width int
		want  []float64
	}{
		{"right 1", Right, 1, []float64{1, 2, 3, 1}},
		{"right 2", Right, 2, []float64{1, 2, 3, 1, 2}},
		{"right 4", Right, 4, []float64{1, 2, 3, 1, 2, 3, 1}},
		{"right 5", Right, 5, []float64{1, 2, 3, 1, 2, 3, 1, 2}},
		{"left 1", Left, 1, []float64{3, 1, 2, 3}},
		{"left 2", Left, 2, []float64{2, 3, 1, 2, 3}},
		{"left 4", Left, 4, []float64{3, 1, 2, 3, 1, 2, 3}},
		{"left 5", Left, 5, []float64{2, 3, 1, 2, 3, 1, 2, 3}},
		{"both 1", Both, 1, []float64{3, 1, 2, 3, 1}},
		{"both 2", Both, 2, []float64{2, 3, 1, 2, 3, 1, 2}},
		{"both 4", Both, 4, []float64{3, 1, 2, 3, 1, 2, 3, 1, 2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			padded, err := s.PadWrap(tt.side, tt.width)
			if err != nil {
				t.Fatalf("PadWrap: %v", err)
			}
			checkSamples(t, padded, tt.want)
		})
	}
}

// TestPadWrapSeamless verifies that any two adjacent output samples
// are adjacent samples of the infinite periodic continuation, for a
// spread of widths that are not multiples of the length.
func TestPadWrapSeamless(t *testing.T) {
	src := []float64{4, 8, 15, 16, 23}
	s := FromSlice(src)
	n := len(src)

	for _, side := range []Side{Left, Right, Both} {
		for width := 1; width <= 2*n+1; width++ {
			padded, err := s.PadWrap(side, width)
			if err != nil {
				t.Fatalf("PadWrap(%v, %d): %v", side, width, err)
			}

			left := 0
			if side == Left || side == Both {
				left = width
			}
			for i := 0; i < padded.Len(); i++ {
				want := src[((i-left)%n+n)%n]
				if padded.At(i) != want {
					t.Fatalf("PadWrap(%v, %d) sample %d = %v, want %v (full: %v)",
						side, width, i, padded.At(i), want, padded)
				}
			}
		}
	}
}

func TestPadWrapEmptySource(t *testing.T) {
	if _, err := New(0).PadWrap(Right, 2); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}

func TestPadWrapTooLarge(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})
	if _, err := s.PadWrap(Right, math.MaxInt); !errors.Is(err, ErrResultTooLarge) {
		t.Fatalf("err = %v, want ErrResultTooLarge", err)
	}
	if _, err := s.PadWrap(Both, math.MaxInt/2+1); !errors.Is(err, ErrResultTooLarge) {
		t.Fatalf("err = %v, want ErrResultTooLarge", err)
	}
}

func TestPadNegativeWidthPanics(t *testing.T) {
	s := FromSlice([]float64{1, 2, 3})
	mustPanic(t, func() { s.PadConst(Left, 0, -1) })
	mustPanic(t, func() { s.PadWrap(Right, -1) })
}

func TestSideString(t *testing.T) {
	if Left.String() != "left" || Right.String() != "right" || Both.String() != "both" {
		t.Fatalf("Side names = %q, %q, %q", Left, Right, Both)
	}
}
