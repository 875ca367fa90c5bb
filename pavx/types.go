package pavx

import "errors"

var (
	// ErrEmptyInput is returned when the input sequence has length 0;
	// the fit is defined for n >= 1 only.
	ErrEmptyInput = errors.New("pavx: input sequence must be non-empty")

	// ErrDimensionMismatch is returned by PavxInto when the output buffer
	// length differs from the input length.
	ErrDimensionMismatch = errors.New("pavx: input and output lengths differ")

	// ErrNaNInf signals a NaN or ±Inf value in the input sequence.
	ErrNaNInf = errors.New("pavx: NaN or Inf encountered")
)
