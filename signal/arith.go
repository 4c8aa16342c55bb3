package signal

import (
	"github.com/cwbudde/algo-signal/internal/vecmath"
)

// Elementwise arithmetic between two signals requires equal lengths
// and returns ErrLengthMismatch otherwise. Value-returning forms leave
// both operands untouched; Assign forms mutate the receiver and leave
// it unchanged on error. Multiplication lives in mul.go.

// Add returns the elementwise sum s + other.
func (s *Signal) Add(other *Signal) (*Signal, error) {
	if len(other.samples) != len(s.samples) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(s.samples))
	vecmath.AddBlock(out, s.samples, other.samples)
	return &Signal{samples: out}, nil
}

// AddAssign adds other to s in place.
func (s *Signal) AddAssign(other *Signal) error {
	if len(other.samples) != len(s.samples) {
		return ErrLengthMismatch
	}
	vecmath.AddBlockInPlace(s.samples, other.samples)
	return nil
}

// Sub returns the elementwise difference s - other.
func (s *Signal) Sub(other *Signal) (*Signal, error) {
	if len(other.samples) != len(s.samples) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(s.samples))
	vecmath.SubBlock(out, s.samples, other.samples)
	return &Signal{samples: out}, nil
}

// SubAssign subtracts other from s in place.
func (s *Signal) SubAssign(other *Signal) error {
	if len(other.samples) != len(s.samples) {
		return ErrLengthMismatch
	}
	vecmath.SubBlockInPlace(s.samples, other.samples)
	return nil
}

// Div returns the elementwise quotient s / other.
// Division by zero follows IEEE-754 semantics (Inf or NaN, no error).
func (s *Signal) Div(other *Signal) (*Signal, error) {
	if len(other.samples) != len(s.samples) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(s.samples))
	vecmath.DivBlock(out, s.samples, other.samples)
	return &Signal{samples: out}, nil
}

// DivAssign divides s by other in place.
// Division by zero follows IEEE-754 semantics (Inf or NaN, no error).
func (s *Signal) DivAssign(other *Signal) error {
	if len(other.samples) != len(s.samples) {
		return ErrLengthMismatch
	}
	vecmath.DivBlockInPlace(s.samples, other.samples)
	return nil
}

// AddScalar returns a new Signal with c added to every sample.
func (s *Signal) AddScalar(c float64) *Signal {
	out := make([]float64, len(s.samples))
	vecmath.OffsetBlock(out, s.samples, c)
	return &Signal{samples: out}
}

// AddScalarAssign adds c to every sample in place.
func (s *Signal) AddScalarAssign(c float64) {
	vecmath.OffsetBlockInPlace(s.samples, c)
}

// SubScalar returns a new Signal with c subtracted from every sample.
func (s *Signal) SubScalar(c float64) *Signal {
	return s.AddScalar(-c)
}

// SubScalarAssign subtracts c from every sample in place.
func (s *Signal) SubScalarAssign(c float64) {
	vecmath.OffsetBlockInPlace(s.samples, -c)
}

// MulScalar returns a new Signal with every sample multiplied by c.
func (s *Signal) MulScalar(c float64) *Signal {
	out := make([]float64, len(s.samples))
	vecmath.ScaleBlock(out, s.samples, c)
	return &Signal{samples: out}
}

// MulScalarAssign multiplies every sample by c in place.
func (s *Signal) MulScalarAssign(c float64) {
	vecmath.ScaleBlockInPlace(s.samples, c)
}

// DivScalar returns a new Signal with every sample divided by c.
// Division by zero follows IEEE-754 semantics (Inf or NaN, no error).
func (s *Signal) DivScalar(c float64) *Signal {
	out := make([]float64, len(s.samples))
	vecmath.DivScalarBlock(out, s.samples, c)
	return &Signal{samples: out}
}

// DivScalarAssign divides every sample by c in place.
// Division by zero follows IEEE-754 semantics (Inf or NaN, no error).
func (s *Signal) DivScalarAssign(c float64) {
	vecmath.DivScalarBlockInPlace(s.samples, c)
}
