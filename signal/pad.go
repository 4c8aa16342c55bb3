package signal

import (
	"fmt"
	"math"
)

// Side selects which end(s) of a Signal a padding operation extends.
type Side int

const (
	// Left extends the signal before its first sample.
	Left Side = iota

	// Right extends the signal after its last sample.
	Right

	// Both extends the signal by the full pad width on each side.
	Both
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// growth returns the left pad width and the total length increase for
// the given pad width. ok is false when the total would overflow int.
// It panics on a negative width or unknown side; both are caller bugs.
func (s Side) growth(width int) (left, total int, ok bool) {
	if width < 0 {
		panic(fmt.Sprintf("signal: negative pad width %d", width))
	}
	switch s {
	case Left:
		return width, width, true
	case Right:
		return 0, width, true
	case Both:
		if width > math.MaxInt/2 {
			return 0, 0, false
		}
		return width, 2 * width, true
	default:
		panic(fmt.Sprintf("signal: invalid pad side %d", int(s)))
	}
}

// PadConst returns a new Signal extended on the given side(s) with
// width copies of value. Padding Both adds width copies on each side.
// Returns ErrResultTooLarge when the padded length would exceed the
// representable index range.
func (s *Signal) PadConst(side Side, value float64, width int) (*Signal, error) {
	left, total, ok := side.growth(width)
	n := len(s.samples)
	if !ok || total > math.MaxInt-n {
		return nil, ErrResultTooLarge
	}

	out := make([]float64, n+total)
	for i := 0; i < left; i++ {
		out[i] = value
	}
	copy(out[left:], s.samples)
	for i := left + n; i < len(out); i++ {
		out[i] = value
	}
	return &Signal{samples: out}, nil
}

// PadWrap returns a new Signal extended on the given side(s) by
// cyclically continuing its own content, as if the sequence repeated
// infinitely in both directions: right padding appends the samples
// that would follow the last element, left padding prepends the
// samples that would precede the first, in forward order, so the
// result reads as one seamless periodic sequence. Padding Both adds
// width samples on each side.
//
// Returns ErrEmptyInput for an empty source and ErrResultTooLarge
// when the padded length would exceed the representable index range.
func (s *Signal) PadWrap(side Side, width int) (*Signal, error) {
	left, total, ok := side.growth(width)
	n := len(s.samples)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if !ok || total > math.MaxInt-n {
		return nil, ErrResultTooLarge
	}

	out := make([]float64, n+total)
	for i := range out {
		src := (i - left) % n
		if src < 0 {
			src += n
		}
		out[i] = s.samples[src]
	}
	return &Signal{samples: out}, nil
}
