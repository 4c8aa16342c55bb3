package signal

import "fmt"

// A logical index i addresses the physical position i when i >= 0 and
// Len()+i when i < 0, so -1 is the last sample. Valid logical indices
// span [-Len, Len).

// validIndex reports whether i is a valid logical index.
func (s *Signal) validIndex(i int) bool {
	n := len(s.samples)
	return i >= -n && i < n
}

// position resolves a valid logical index to its physical position.
func (s *Signal) position(i int) int {
	if i < 0 {
		return len(s.samples) + i
	}
	return i
}

// mustPosition resolves a logical index, panicking when out of range.
func (s *Signal) mustPosition(i int) int {
	if !s.validIndex(i) {
		panic(fmt.Sprintf("signal: index %d out of range for length %d", i, len(s.samples)))
	}
	return s.position(i)
}

// At returns the sample at logical index i.
// It panics if i is outside [-Len, Len).
func (s *Signal) At(i int) float64 {
	return s.samples[s.mustPosition(i)]
}

// SetAt stores v at logical index i.
// It panics if i is outside [-Len, Len).
func (s *Signal) SetAt(i int, v float64) {
	s.samples[s.mustPosition(i)] = v
}
