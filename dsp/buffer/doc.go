// Package buffer provides a contiguous row-major matrix type for
// frame-oriented DSP data such as spectrogram frames and per-frame band
// energies. A single backing allocation replaces per-row allocation
// bookkeeping and keeps row access cache-friendly; all DSP functions
// accept raw []float64 slices, and Row bridges to them without copying.
package buffer
