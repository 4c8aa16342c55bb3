package signal

import (
	"github.com/cwbudde/algo-signal/internal/vecmath"
)

// Diff returns the forward first difference: out[i] = s[i+1] - s[i].
// The result is one sample shorter than the source.
// Returns ErrShortLength when the signal has fewer than two samples.
func (s *Signal) Diff() (*Signal, error) {
	n := len(s.samples)
	if n < 2 {
		return nil, ErrShortLength
	}
	out := make([]float64, n-1)
	vecmath.SubBlock(out, s.samples[1:], s.samples[:n-1])
	return &Signal{samples: out}, nil
}

// Rev returns the samples in reverse order. Empty and single-sample
// signals reverse to themselves.
func (s *Signal) Rev() *Signal {
	n := len(s.samples)
	out := make([]float64, n)
	for i, v := range s.samples {
		out[n-1-i] = v
	}
	return &Signal{samples: out}
}
