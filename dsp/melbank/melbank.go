package melbank

import (
	"fmt"
	"math"
)

// FilterBank holds a set of overlapping triangular mel filters defined
// over discrete spectral bins.
//
// Band centers are spaced equidistantly on the mel scale between the two
// cutoff frequencies, and adjacent bands share boundary bins: the high
// edge of band i-1 and the low edge of band i+1 both sit on the center
// bin of band i, giving full coverage with 50% overlap. The bank is
// immutable after construction.
type FilterBank struct {
	sampleRate float64
	fftSize    int
	fbSize     int
	numBands   int
	loCut      float64
	hiCut      float64
	binSize    float64

	lo     []float64 // low band edges in bins, integral
	center []float64 // center bins, integral
	hi     []float64 // high band edges in bins, last entry fractional

	weights []float64 // numBands rows of fbSize weights, row-major
	maxSpan int       // widest active bin range across all bands
}

// New builds a mel filter bank for spectra of the given FFT size.
//
// The usable bin count is half the next power of two >= fftSize. Band
// centers are spaced equidistantly on the mel scale between loCutHz and
// hiCutHz. The sample rate defaults to [DefaultSampleRate] and can be
// overridden with [WithSampleRate]; hiCutHz must not exceed its Nyquist
// frequency.
func New(fftSize, numBands int, loCutHz, hiCutHz float64, opts ...Option) (*FilterBank, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if fftSize < 2 {
		return nil, fmt.Errorf("melbank: fft size must be >= 2: %d", fftSize)
	}
	if cfg.sampleRate <= 0 {
		return nil, fmt.Errorf("melbank: sample rate must be > 0: %v", cfg.sampleRate)
	}
	if numBands <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrZeroBands, numBands)
	}
	if loCutHz < 0 {
		return nil, fmt.Errorf("melbank: low cutoff must be >= 0: %g", loCutHz)
	}
	if hiCutHz <= loCutHz {
		return nil, fmt.Errorf("melbank: high cutoff must be above low cutoff: %g <= %g", hiCutHz, loCutHz)
	}
	if nyquist := cfg.sampleRate / 2; hiCutHz > nyquist {
		return nil, fmt.Errorf("%w: %g Hz > %g Hz", ErrCutoffTooHigh, hiCutHz, nyquist)
	}

	fb := &FilterBank{
		sampleRate: cfg.sampleRate,
		fftSize:    fftSize,
		fbSize:     nextPowerOf2(fftSize) / 2,
		numBands:   numBands,
		loCut:      loCutHz,
		hiCut:      hiCutHz,
	}
	fb.build()

	return fb, nil
}

// build computes band edges and triangular weights. The frequency math
// runs in single precision so that bin indices land on the same bins as
// the single-precision implementations this construction is shared with;
// edges and weights are stored widened to float64.
func (fb *FilterBank) build() {
	loCut := float32(fb.loCut)
	hiCut := float32(fb.hiCut)

	binSize := float32(fb.sampleRate) / float32(2*fb.fbSize-1)
	delta := (HzToMel(hiCut) - HzToMel(loCut)) / float32(fb.numBands+1)

	fb.binSize = float64(binSize)
	fb.lo = make([]float64, fb.numBands)
	fb.center = make([]float64, fb.numBands)
	fb.hi = make([]float64, fb.numBands)

	melCenter := HzToMel(loCut)
	fb.lo[0] = float64(roundBin(loCut / binSize))

	for i := 0; i < fb.numBands; i++ {
		melCenter += delta
		center := float64(roundBin(MelToHz(melCenter) / binSize))
		fb.center[i] = center
		if i > 0 {
			fb.hi[i-1] = center
		}
		if i < fb.numBands-1 {
			fb.lo[i+1] = center
		}
	}
	// The last high edge stays fractional; rounding it would clip the
	// final descent short of the cutoff.
	fb.hi[fb.numBands-1] = float64(hiCut / binSize)

	fb.weights = make([]float64, fb.numBands*fb.fbSize)
	for band := 0; band < fb.numBands; band++ {
		fb.synthesizeTriangle(band)
	}

	for band := range fb.lo {
		if span := bandSpan(fb.lo[band], fb.hi[band]); span > fb.maxSpan {
			fb.maxSpan = span
		}
	}
}

// synthesizeTriangle fills one weight row bin by bin. The running value
// is assigned before it is stepped: the first bin above the low edge
// holds 0 and the peak of exactly 1.0 lands one bin past the center.
func (fb *FilterBank) synthesizeTriangle(band int) {
	lo := fb.lo[band]
	center := fb.center[band]
	hi := fb.hi[band]
	row := fb.weights[band*fb.fbSize : (band+1)*fb.fbSize]

	x := 0.0
	for k := range row {
		fk := float64(k)
		if fk > lo && fk <= center {
			row[k] = x
			x += 1 / (center - lo)
		} else if fk > center && fk <= hi {
			row[k] = x
			x -= 1 / (hi - center)
		}
	}
}

// bandSpan returns the active bin count of a band with the given edges.
func bandSpan(lo, hi float64) int {
	return int(math.Ceil(hi) - math.Floor(lo))
}

// NumBands returns the number of bands.
func (fb *FilterBank) NumBands() int { return fb.numBands }

// Bins returns the number of usable spectral bins per frame.
func (fb *FilterBank) Bins() int { return fb.fbSize }

// FFTSize returns the FFT size the bank was built for.
func (fb *FilterBank) FFTSize() int { return fb.fftSize }

// SampleRate returns the sample rate in Hz.
func (fb *FilterBank) SampleRate() float64 { return fb.sampleRate }

// BinSize returns the width of one spectral bin in Hz.
func (fb *FilterBank) BinSize() float64 { return fb.binSize }

// LowCut returns the low cutoff frequency in Hz.
func (fb *FilterBank) LowCut() float64 { return fb.loCut }

// HighCut returns the high cutoff frequency in Hz.
func (fb *FilterBank) HighCut() float64 { return fb.hiCut }

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
