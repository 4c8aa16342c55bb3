// Package signal provides a fixed-length container for real-valued
// sample sequences with circular (negative) indexing, elementwise and
// scalar-broadcast arithmetic, sub-range extraction, sliding windows,
// constant and periodic padding, first-order differencing, and
// descriptive statistics.
//
// A Signal is value-semantic: operations such as Add, CutFromTo, or
// PadWrap return a newly allocated Signal and never alias the source's
// storage. Only the ...Assign variants and SetAt mutate in place.
//
// Indexing is precondition-checked: passing a logical index outside
// [-Len, Len) to At, SetAt, or the Cut functions panics, following the
// same convention as slice bounds checks. All other failure modes
// (length mismatch, short or empty input, oversized padding) are
// reported as errors.
package signal
