package melbank

// Bounds returns the low edge, center, and high edge of a band in bin
// units. Edges are integral except for the high edge of the last band,
// which keeps its fractional position. band must be in [0, NumBands).
func (fb *FilterBank) Bounds(band int) (lo, center, hi float64) {
	return fb.lo[band], fb.center[band], fb.hi[band]
}

// CenterFrequency returns the center frequency of a band in Hz.
func (fb *FilterBank) CenterFrequency(band int) float64 {
	return fb.center[band] * fb.binSize
}

// Span returns the number of bins a band actively covers.
func (fb *FilterBank) Span(band int) int {
	return bandSpan(fb.lo[band], fb.hi[band])
}

// Weights returns a copy of the dense weight vector of a band, one entry
// per spectral bin.
func (fb *FilterBank) Weights(band int) []float64 {
	row := fb.weights[band*fb.fbSize : (band+1)*fb.fbSize]
	out := make([]float64, len(row))
	copy(out, row)
	return out
}
