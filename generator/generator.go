package generator

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-signal/signal"
)

const tau = 2 * math.Pi

// Generator synthesizes waveforms over a fixed time span at a fixed
// sample rate. It is immutable after construction.
type Generator struct {
	sampleRate float64
	startTime  float64
	stopTime   float64
	rng        *rand.Rand
}

// New returns a Generator with the given options applied. The default
// configuration is 48 kHz over the span [0s, 1s) with noise drawn
// from the shared process-wide random source.
func New(opts ...Option) *Generator {
	g := &Generator{
		sampleRate: 48000,
		startTime:  0,
		stopTime:   1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the configured sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// numSamples returns the sample count covering [startTime, stopTime).
func (g *Generator) numSamples() int {
	n := int((g.stopTime - g.startTime) * g.sampleRate)
	if n < 0 {
		return 0
	}
	return n
}

// sampleTimes runs f once per sample with the sample's absolute time.
func (g *Generator) sampleTimes(f func(t float64) float64) *signal.Signal {
	n := g.numSamples()
	data := make([]float64, n)

	t := g.startTime
	gap := 1 / g.sampleRate
	for i := range data {
		data[i] = f(t)
		t += gap
	}
	return signal.FromSlice(data)
}

// periodSamples returns the whole number of samples in one period of
// freq, at least 1, and the sample offset equivalent to phase radians.
func (g *Generator) periodSamples(freq, phase float64) (period, offset int) {
	period = int(g.sampleRate / freq)
	if period < 1 {
		period = 1
	}
	offset = int(math.Round(phase / tau * float64(period)))
	offset %= period
	if offset < 0 {
		offset += period
	}
	return period, offset
}

// Sine returns a unit-amplitude sine wave at freq Hz with the given
// phase in radians.
func (g *Generator) Sine(freq, phase float64) *signal.Signal {
	return g.sampleTimes(func(t float64) float64 {
		return math.Sin(tau*freq*t + phase)
	})
}

// Pulse returns a unit pulse wave at freq Hz. dutyCycle in [0, 1]
// sets the fraction of each period spent at +1; the rest is -1.
// phase is in radians.
func (g *Generator) Pulse(freq, phase, dutyCycle float64) *signal.Signal {
	n := g.numSamples()
	data := make([]float64, n)

	period, offset := g.periodSamples(freq, phase)
	high := int(dutyCycle * float64(period))

	for i := range data {
		if (i+offset)%period < high {
			data[i] = 1
		} else {
			data[i] = -1
		}
	}
	return signal.FromSlice(data)
}

// Square returns a unit square wave, a pulse wave with 50% duty cycle.
func (g *Generator) Square(freq, phase float64) *signal.Signal {
	return g.Pulse(freq, phase, 0.5)
}

// Triangle returns a unit triangle wave at freq Hz with the given
// phase in radians.
func (g *Generator) Triangle(freq, phase float64) *signal.Signal {
	n := g.numSamples()
	data := make([]float64, n)

	period, offset := g.periodSamples(freq, phase)

	for i := range data {
		pos := float64((i+offset)%period) / float64(period)
		if pos < 0.5 {
			data[i] = 4*pos - 1
		} else {
			data[i] = 1 - 4*(pos-0.5)
		}
	}
	return signal.FromSlice(data)
}

// Sawtooth returns a unit sawtooth wave at freq Hz with the given
// phase in radians, rising from -1 to 1 over each period.
func (g *Generator) Sawtooth(freq, phase float64) *signal.Signal {
	n := g.numSamples()
	data := make([]float64, n)

	period, offset := g.periodSamples(freq, phase)

	for i := range data {
		pos := float64((i+offset)%period) / float64(period)
		data[i] = 2 * (pos - 0.5)
	}
	return signal.FromSlice(data)
}

// Step returns a unit step that switches from 0 to 1 at stepTime.
func (g *Generator) Step(stepTime float64) *signal.Signal {
	return g.sampleTimes(func(t float64) float64 {
		if t < stepTime {
			return 0
		}
		return 1
	})
}

// GaussianPulse returns a gaussian bell curve centered at centerTime
// with standard deviation sigma seconds.
func (g *Generator) GaussianPulse(centerTime, sigma float64) *signal.Signal {
	return g.sampleTimes(func(t float64) float64 {
		d := t - centerTime
		return math.Exp(-(d * d) / (2 * sigma * sigma))
	})
}

// Noise returns gaussian white noise with the given mean and standard
// deviation. Each call draws fresh samples; use WithSeed for
// reproducible output.
func (g *Generator) Noise(mean, stdDev float64) *signal.Signal {
	n := g.numSamples()
	data := make([]float64, n)

	norm := rand.NormFloat64
	if g.rng != nil {
		norm = g.rng.NormFloat64
	}
	for i := range data {
		data[i] = norm()*stdDev + mean
	}
	return signal.FromSlice(data)
}

// Exponential returns e^(alpha*t) sampled over the time span.
func (g *Generator) Exponential(alpha float64) *signal.Signal {
	return g.sampleTimes(func(t float64) float64 {
		return math.Exp(alpha * t)
	})
}

// Wave samples an arbitrary function of time, with t starting at 0
// regardless of the configured start time.
func (g *Generator) Wave(f func(t float64) float64) *signal.Signal {
	n := g.numSamples()
	data := make([]float64, n)

	t := 0.0
	gap := 1 / g.sampleRate
	for i := range data {
		data[i] = f(t)
		t += gap
	}
	return signal.FromSlice(data)
}
