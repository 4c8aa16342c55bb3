package generator

import "math/rand"

// Option mutates a Generator during construction.
type Option func(*Generator)

// WithSampleRate sets the number of samples per second.
// Non-positive rates are ignored.
func WithSampleRate(sampleRate float64) Option {
	return func(g *Generator) {
		if sampleRate > 0 {
			g.sampleRate = sampleRate
		}
	}
}

// WithTimeSpan sets the start and stop time of generated waveforms,
// in seconds. Spans with stop <= start are ignored.
func WithTimeSpan(start, stop float64) Option {
	return func(g *Generator) {
		if stop > start {
			g.startTime = start
			g.stopTime = stop
		}
	}
}

// WithSeed installs a private random source so that noise waveforms
// are reproducible. Without it, noise draws from the shared
// process-wide source.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}
