package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-melbank/dsp/buffer"
)

// FrameMatrix is a frame-major real spectrogram: one row per STFT frame,
// one column per spectral bin. It is the bridge between complex STFT
// outputs and frame consumers such as a filter bank; its method set
// matches the consumer-side frame interfaces structurally, so no import
// in either direction is needed.
type FrameMatrix struct {
	m *buffer.Matrix
}

// NumFrames returns the number of frames.
func (f *FrameMatrix) NumFrames() int { return f.m.Rows() }

// Bins returns the number of bins kept per frame.
func (f *FrameMatrix) Bins() int { return f.m.Cols() }

// Frame returns frame w as a view into the backing store.
func (f *FrameMatrix) Frame(w int) []float64 { return f.m.Row(w) }

// Matrix returns the backing matrix.
func (f *FrameMatrix) Matrix() *buffer.Matrix { return f.m }

// MagnitudeFrames converts complex STFT frames to a magnitude frame
// matrix, keeping the first bins bins of each frame. Trailing bins
// beyond that count (the redundant upper half of a real-input FFT) are
// dropped. Every frame must hold at least bins values.
func MagnitudeFrames(frames [][]complex128, bins int) (*FrameMatrix, error) {
	return convertFrames(frames, bins, vecMagnitude)
}

// PowerFrames converts complex STFT frames to a power frame matrix,
// keeping the first bins bins of each frame.
func PowerFrames(frames [][]complex128, bins int) (*FrameMatrix, error) {
	return convertFrames(frames, bins, vecPower)
}

type partsFunc func(dst, re, im []float64)

func vecMagnitude(dst, re, im []float64) { MagnitudeFromParts(dst, re, im) }
func vecPower(dst, re, im []float64)     { PowerFromParts(dst, re, im) }

func convertFrames(frames [][]complex128, bins int, convert partsFunc) (*FrameMatrix, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("spectrum: bin count must be > 0: %d", bins)
	}
	for w, frame := range frames {
		if len(frame) < bins {
			return nil, fmt.Errorf("spectrum: frame %d has %d bins, need %d", w, len(frame), bins)
		}
	}

	out := buffer.NewMatrix(len(frames), bins)
	re, im, buf := getScratch(bins)

	for w, frame := range frames {
		for k := 0; k < bins; k++ {
			re[k] = real(frame[k])
			im[k] = imag(frame[k])
		}
		convert(out.Row(w), re, im)
	}

	putScratch(buf)
	return &FrameMatrix{m: out}, nil
}
