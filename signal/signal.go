package signal

import (
	"fmt"
	"iter"
	"math"
)

// Real constrains the numeric types a Signal can be constructed from.
// Every element is converted to float64 on construction.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signal is a fixed-length sequence of float64 samples.
// The zero value is an empty signal ready to use.
type Signal struct {
	samples []float64
}

// New returns a zero-filled Signal of the given length.
func New(length int) *Signal {
	if length < 0 {
		length = 0
	}
	return &Signal{samples: make([]float64, length)}
}

// FromSlice returns a Signal holding a copy of s.
// Later mutations of s are not visible through the Signal.
func FromSlice(s []float64) *Signal {
	out := make([]float64, len(s))
	copy(out, s)
	return &Signal{samples: out}
}

// FromValues returns a Signal built from any real-valued slice,
// converting each element to float64.
func FromValues[T Real](values []T) *Signal {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return &Signal{samples: out}
}

// FromFunc returns a Signal of the given length where element i is f(i).
func FromFunc(length int, f func(i int) float64) *Signal {
	if length < 0 {
		length = 0
	}
	out := make([]float64, length)
	for i := range out {
		out[i] = f(i)
	}
	return &Signal{samples: out}
}

// FromSeq collects a finite iterator into a Signal.
func FromSeq(seq iter.Seq[float64]) *Signal {
	var out []float64
	for v := range seq {
		out = append(out, v)
	}
	return &Signal{samples: out}
}

// Constant returns a Signal of the given length with every element set
// to value.
func Constant(value float64, length int) *Signal {
	if length < 0 {
		length = 0
	}
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return &Signal{samples: out}
}

// Ones returns a Signal of the given length with every element set to 1.
func Ones(length int) *Signal {
	return Constant(1, length)
}

// Linspace returns length evenly spaced samples over the closed
// interval [start, end]. A single-sample Signal holds start.
func Linspace(start, end float64, length int) *Signal {
	if length <= 0 {
		return &Signal{}
	}
	out := make([]float64, length)
	if length == 1 {
		out[0] = start
		return &Signal{samples: out}
	}
	step := (end - start) / float64(length-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// The last sample is exactly end.
	out[length-1] = end
	return &Signal{samples: out}
}

// Arange returns samples start, start+step, ... strictly before stop.
// A zero or non-finite step yields an empty Signal.
func Arange(start, stop, step float64) *Signal {
	if step == 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return &Signal{}
	}
	n := int(math.Ceil((stop - start) / step))
	if n <= 0 {
		return &Signal{}
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return &Signal{samples: out}
}

// Len returns the number of samples.
func (s *Signal) Len() int {
	return len(s.samples)
}

// Samples returns the underlying slice without copying.
// Mutations through the slice are visible in the Signal.
func (s *Signal) Samples() []float64 {
	return s.samples
}

// Values returns a copy of the samples.
func (s *Signal) Values() []float64 {
	out := make([]float64, len(s.samples))
	copy(out, s.samples)
	return out
}

// Clone returns a deep copy of the Signal.
func (s *Signal) Clone() *Signal {
	return FromSlice(s.samples)
}

// All iterates over (index, sample) pairs in order.
func (s *Signal) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range s.samples {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Map returns a new Signal with f applied to every sample.
func (s *Signal) Map(f func(v float64) float64) *Signal {
	out := make([]float64, len(s.samples))
	for i, v := range s.samples {
		out[i] = f(v)
	}
	return &Signal{samples: out}
}

// Apply replaces every sample with f(sample) in place.
func (s *Signal) Apply(f func(v float64) float64) {
	for i, v := range s.samples {
		s.samples[i] = f(v)
	}
}

// Equal reports whether the two signals have identical length and
// samples. NaN samples compare unequal, as with ==.
func (s *Signal) Equal(other *Signal) bool {
	if len(s.samples) != len(other.samples) {
		return false
	}
	for i, v := range s.samples {
		if v != other.samples[i] {
			return false
		}
	}
	return true
}

// EqualWithin reports whether the two signals have identical length
// and elementwise differences within eps (relative for large values).
func (s *Signal) EqualWithin(other *Signal, eps float64) bool {
	if len(s.samples) != len(other.samples) {
		return false
	}
	for i, v := range s.samples {
		if !nearlyEqual(v, other.samples[i], eps) {
			return false
		}
	}
	return true
}

const defaultEpsilon = 1e-12

// nearlyEqual reports whether a and b are equal within eps, using a
// relative comparison once the magnitudes exceed 1.
func nearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// String formats the samples like a float64 slice.
func (s *Signal) String() string {
	return fmt.Sprint(s.samples)
}
