package melbank

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-melbank/dsp/buffer"
	"github.com/cwbudde/algo-melbank/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrogram is a read-only adapter for spectral frame sequences.
//
// Frame w must hold at least [FilterBank.Bins] usable bins, bin k
// carrying the magnitude (or power) at frequency k times the bin width.
// This decouples the package from any specific STFT backend.
type Spectrogram interface {
	NumFrames() int
	Frame(w int) []float64
}

// FrameSlice adapts a [][]float64 as [Spectrogram].
type FrameSlice [][]float64

// NumFrames returns the frame count.
func (s FrameSlice) NumFrames() int { return len(s) }

// Frame returns frame w.
func (s FrameSlice) Frame(w int) []float64 { return s[w] }

// scratchBuf holds pooled scratch memory for banded sub-range extraction.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (filt, frame []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)
	return buf.data[:n], buf.data[n : 2*n], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Apply computes per-frame band energies for sp and returns them as a
// freshly allocated numFrames x numBands matrix.
func (fb *FilterBank) Apply(sp Spectrogram) (*buffer.Matrix, error) {
	frames := 0
	if sp != nil {
		frames = sp.NumFrames()
	}

	out := buffer.NewMatrix(frames, fb.numBands)
	if err := fb.ApplyTo(out, sp); err != nil {
		return nil, err
	}

	return out, nil
}

// ApplyTo computes per-frame band energies for sp into dst, which must
// hold at least sp.NumFrames() rows and [FilterBank.NumBands] columns.
// Row w receives the energies of frame w, one column per band.
//
// Each band only multiplies and sums the bins inside its active range,
// so the work per frame scales with the bands' overlap rather than the
// full spectrum length. The result matches the dense multiply-and-sum
// over the full weight rows, since every skipped weight is zero.
//
// Input shapes are validated once up front; the banded loop itself runs
// unchecked. Scratch buffers are pooled internally, so in steady state
// ApplyTo does not allocate.
func (fb *FilterBank) ApplyTo(dst *buffer.Matrix, sp Spectrogram) error {
	if sp == nil || sp.NumFrames() == 0 {
		return nil
	}

	frames := sp.NumFrames()
	if dst == nil {
		return fmt.Errorf("%w: nil destination", ErrOutputSize)
	}
	if dst.Rows() < frames || dst.Cols() < fb.numBands {
		return fmt.Errorf("%w: %dx%d, need %dx%d", ErrOutputSize, dst.Rows(), dst.Cols(), frames, fb.numBands)
	}
	for w := 0; w < frames; w++ {
		if n := len(sp.Frame(w)); n < fb.fbSize {
			return fmt.Errorf("%w: frame %d has %d bins, need %d", ErrFrameLength, w, n, fb.fbSize)
		}
	}

	// No zeroing between uses: every pass overwrites exactly span
	// entries from offset 0 and sums only those.
	filt, frame, scratch := getScratch(fb.maxSpan)

	for w := 0; w < frames; w++ {
		src := sp.Frame(w)
		row := dst.Row(w)

		for band := 0; band < fb.numBands; band++ {
			loF := int(math.Floor(fb.lo[band]))
			span := bandSpan(fb.lo[band], fb.hi[band])
			wrow := fb.weights[band*fb.fbSize : (band+1)*fb.fbSize]

			fSub := filt[:span]
			core.CopyInto(fSub, wrow[loF:])
			core.CopyInto(frame[:span], src[loF:])

			vecmath.MulBlockInPlace(fSub, frame[:span])
			row[band] = vecmath.Sum(fSub)
		}
	}

	putScratch(scratch)

	return nil
}
