package signal

import (
	"math"

	"github.com/cwbudde/algo-signal/internal/vecmath"
)

// Sum returns the sum of all samples. Returns 0 for an empty signal.
func (s *Signal) Sum() float64 {
	return vecmath.Sum(s.samples)
}

// Mean returns the arithmetic mean and true, or (0, false) for an
// empty signal.
func (s *Signal) Mean() (float64, bool) {
	n := len(s.samples)
	if n == 0 {
		return 0, false
	}
	return vecmath.Sum(s.samples) / float64(n), true
}

// Min returns the smallest sample.
// Returns ErrEmptyInput for an empty signal.
func (s *Signal) Min() (float64, error) {
	_, v, err := s.argExtreme(func(a, b float64) bool { return a < b })
	return v, err
}

// Max returns the largest sample.
// Returns ErrEmptyInput for an empty signal.
func (s *Signal) Max() (float64, error) {
	_, v, err := s.argExtreme(func(a, b float64) bool { return a > b })
	return v, err
}

// ArgMin returns the position of the smallest sample. The first
// position wins on ties. Returns ErrEmptyInput for an empty signal.
func (s *Signal) ArgMin() (int, error) {
	i, _, err := s.argExtreme(func(a, b float64) bool { return a < b })
	return i, err
}

// ArgMax returns the position of the largest sample. The first
// position wins on ties. Returns ErrEmptyInput for an empty signal.
func (s *Signal) ArgMax() (int, error) {
	i, _, err := s.argExtreme(func(a, b float64) bool { return a > b })
	return i, err
}

func (s *Signal) argExtreme(better func(a, b float64) bool) (int, float64, error) {
	if len(s.samples) == 0 {
		return 0, 0, ErrEmptyInput
	}
	pos := 0
	val := s.samples[0]
	for i, v := range s.samples[1:] {
		if better(v, val) {
			val = v
			pos = i + 1
		}
	}
	return pos, val, nil
}

// Range returns the smallest and largest sample.
// Returns ErrEmptyInput for an empty signal.
func (s *Signal) Range() (lo, hi float64, err error) {
	if len(s.samples) == 0 {
		return 0, 0, ErrEmptyInput
	}
	lo = s.samples[0]
	hi = s.samples[0]
	for _, v := range s.samples[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, nil
}

// PeakToPeak returns max - min.
// Returns ErrEmptyInput for an empty signal.
func (s *Signal) PeakToPeak() (float64, error) {
	lo, hi, err := s.Range()
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

// moment2 returns the sample count and the second central moment
// accumulated with Welford's algorithm.
func (s *Signal) moment2() (n int, m2 float64) {
	var mean float64
	for i, x := range s.samples {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)
	}
	return len(s.samples), m2
}

// VarPop returns the population variance (dividing by n).
// Returns NaN for an empty signal.
func (s *Signal) VarPop() float64 {
	n, m2 := s.moment2()
	if n == 0 {
		return math.NaN()
	}
	return m2 / float64(n)
}

// VarSample returns the sample variance (dividing by n-1).
// Returns NaN for signals shorter than two samples.
func (s *Signal) VarSample() float64 {
	n, m2 := s.moment2()
	if n < 2 {
		return math.NaN()
	}
	return m2 / float64(n-1)
}

// StdPop returns the population standard deviation.
// Returns NaN for an empty signal.
func (s *Signal) StdPop() float64 {
	return math.Sqrt(s.VarPop())
}

// StdSample returns the sample standard deviation.
// Returns NaN for signals shorter than two samples.
func (s *Signal) StdSample() float64 {
	return math.Sqrt(s.VarSample())
}

// Energy returns the sum of squared samples.
// Returns 0 for an empty signal.
func (s *Signal) Energy() float64 {
	return vecmath.SumSquares(s.samples)
}

// AvgPower returns the energy divided by the sample count.
// Returns NaN for an empty signal.
func (s *Signal) AvgPower() float64 {
	n := len(s.samples)
	if n == 0 {
		return math.NaN()
	}
	return vecmath.SumSquares(s.samples) / float64(n)
}

// Summary holds the descriptive statistics of a Signal.
type Summary struct {
	Length     int
	Sum        float64
	Mean       float64
	Min        float64
	MinPos     int
	Max        float64
	MaxPos     int
	PeakToPeak float64
	VarPop     float64
	VarSample  float64
	StdPop     float64
	StdSample  float64
	Energy     float64
	AvgPower   float64
}

// Describe computes all descriptive statistics in a single pass using
// Welford's online algorithm for the variance terms. For an empty
// signal the length-dependent fields (Mean, variances, AvgPower) are
// NaN and everything else is zero.
func (s *Signal) Describe() Summary {
	n := len(s.samples)
	if n == 0 {
		nan := math.NaN()
		return Summary{
			Mean:      nan,
			VarPop:    nan,
			VarSample: nan,
			StdPop:    nan,
			StdSample: nan,
			AvgPower:  nan,
		}
	}

	var (
		mean  float64
		m2    float64
		sum   float64
		sumSq float64

		maxVal = s.samples[0]
		maxPos int
		minVal = s.samples[0]
		minPos int
	)

	for i, x := range s.samples {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sum += x
		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}
	}

	nf := float64(n)
	varPop := m2 / nf
	varSample := math.NaN()
	if n > 1 {
		varSample = m2 / (nf - 1)
	}

	return Summary{
		Length:     n,
		Sum:        sum,
		Mean:       mean,
		Min:        minVal,
		MinPos:     minPos,
		Max:        maxVal,
		MaxPos:     maxPos,
		PeakToPeak: maxVal - minVal,
		VarPop:     varPop,
		VarSample:  varSample,
		StdPop:     math.Sqrt(varPop),
		StdSample:  math.Sqrt(varSample),
		Energy:     sumSq,
		AvgPower:   sumSq / nf,
	}
}
