// Package generator synthesizes common test waveforms (sine, pulse,
// square, triangle, sawtooth, step, gaussian pulse, white noise,
// exponential, or a custom function of time) as signal.Signal values.
//
// A Generator is configured once with options and then queried for as
// many waveforms as needed:
//
//	g := generator.New(
//		generator.WithSampleRate(44100),
//		generator.WithTimeSpan(0, 1),
//	)
//	sine := g.Sine(440, 0)
//
// Noise draws from the process-wide random source unless WithSeed
// installs a private, reproducible one.
package generator
