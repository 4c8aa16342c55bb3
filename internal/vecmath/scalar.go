package vecmath

// ScaleBlock multiplies each element by a scalar: dst[i] = src[i] * scale.
// Slices must have equal length. Panics if lengths differ.
func ScaleBlock(dst, src []float64, scale float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] * scale
	}
}

// ScaleBlockInPlace multiplies each element by a scalar in-place: dst[i] *= scale.
func ScaleBlockInPlace(dst []float64, scale float64) {
	for i := range dst {
		dst[i] *= scale
	}
}

// OffsetBlock adds a scalar to each element: dst[i] = src[i] + offset.
// Slices must have equal length. Panics if lengths differ.
func OffsetBlock(dst, src []float64, offset float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] + offset
	}
}

// OffsetBlockInPlace adds a scalar to each element in-place: dst[i] += offset.
func OffsetBlockInPlace(dst []float64, offset float64) {
	for i := range dst {
		dst[i] += offset
	}
}

// DivScalarBlock divides each element by a scalar: dst[i] = src[i] / divisor.
// Division by zero follows IEEE-754 semantics.
// Slices must have equal length. Panics if lengths differ.
func DivScalarBlock(dst, src []float64, divisor float64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] = src[i] / divisor
	}
}

// DivScalarBlockInPlace divides each element by a scalar in-place: dst[i] /= divisor.
func DivScalarBlockInPlace(dst []float64, divisor float64) {
	for i := range dst {
		dst[i] /= divisor
	}
}
