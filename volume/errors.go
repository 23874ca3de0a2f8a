// Package volume owns contiguous sample buffers and drives multi-level
// CDF 9/7 wavelet decompositions over them.
package volume

import "errors"

var (
	// ErrWrongDims is returned when a declared shape does not match the
	// number of samples provided on ingest.
	ErrWrongDims = errors.New("sample count does not match declared dims")
)
