package signal

import (
	"github.com/cwbudde/algo-vecmath"
)

// Mul returns the elementwise product s * other.
func (s *Signal) Mul(other *Signal) (*Signal, error) {
	if len(other.samples) != len(s.samples) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(s.samples))
	vecmath.MulBlock(out, s.samples, other.samples)
	return &Signal{samples: out}, nil
}

// MulAssign multiplies s by other in place.
func (s *Signal) MulAssign(other *Signal) error {
	if len(other.samples) != len(s.samples) {
		return ErrLengthMismatch
	}
	vecmath.MulBlockInPlace(s.samples, other.samples)
	return nil
}
