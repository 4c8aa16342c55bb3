// Package vecmath provides pure Go elementwise kernels for the block
// operations the signal package needs beyond what the external
// algo-vecmath module exports.
package vecmath

// AddBlock performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// AddBlockInPlace performs in-place element-wise addition: dst[i] += src[i].
// Slices must have equal length. Panics if lengths differ.
func AddBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] += src[i]
	}
}

// SubBlock performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length. Panics if lengths differ.
func SubBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// SubBlockInPlace performs in-place element-wise subtraction: dst[i] -= src[i].
// Slices must have equal length. Panics if lengths differ.
func SubBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] -= src[i]
	}
}

// DivBlock performs element-wise division: dst[i] = a[i] / b[i].
// Division by zero follows IEEE-754 semantics.
// Slices must have equal length. Panics if lengths differ.
func DivBlock(dst, a, b []float64) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// DivBlockInPlace performs in-place element-wise division: dst[i] /= src[i].
// Slices must have equal length. Panics if lengths differ.
func DivBlockInPlace(dst, src []float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] /= src[i]
	}
}
