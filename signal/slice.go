package signal

import (
	"fmt"
	"iter"
)

// CutFrom returns a new Signal holding the samples from logical index
// from through the end, inclusive. It panics if from is out of range.
func (s *Signal) CutFrom(from int) *Signal {
	start := s.mustPosition(from)
	return FromSlice(s.samples[start:])
}

// CutTo returns a new Signal holding the samples from the start
// through logical index to, inclusive. It panics if to is out of range.
func (s *Signal) CutTo(to int) *Signal {
	end := s.mustPosition(to)
	return FromSlice(s.samples[:end+1])
}

// CutFromTo returns a new Signal holding the closed range [from, to]
// of logical indices. It panics if either bound is out of range or if
// from resolves to a position past to.
func (s *Signal) CutFromTo(from, to int) *Signal {
	start := s.mustPosition(from)
	end := s.mustPosition(to)
	if start > end {
		panic(fmt.Sprintf("signal: inverted cut range: index %d resolves past %d", from, to))
	}
	return FromSlice(s.samples[start : end+1])
}

// Windows returns a lazy, restartable sequence of sliding windows of
// the given size, advancing one sample at a time. Each yielded Signal
// owns its samples. A size larger than Len yields no windows; the
// sequence has Len-size+1 elements otherwise. It panics if size is
// not positive.
func (s *Signal) Windows(size int) iter.Seq[*Signal] {
	if size <= 0 {
		panic(fmt.Sprintf("signal: window size %d must be positive", size))
	}
	return func(yield func(*Signal) bool) {
		for i := 0; i+size <= len(s.samples); i++ {
			if !yield(FromSlice(s.samples[i : i+size])) {
				return
			}
		}
	}
}
