package melbank

import "errors"

// Errors returned by filter bank construction and application.
var (
	ErrZeroBands     = errors.New("melbank: number of bands must be > 0")
	ErrCutoffTooHigh = errors.New("melbank: high cutoff exceeds Nyquist")
	ErrFrameLength   = errors.New("melbank: frame shorter than filter bank bins")
	ErrOutputSize    = errors.New("melbank: output matrix too small")
)
