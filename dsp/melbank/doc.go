// Package melbank builds mel-scale triangular filter banks and applies
// them to spectrogram frames, reducing dense spectra to per-frame band
// energies.
//
// The package intentionally does not compute the STFT itself. It consumes
// magnitude or power frames produced by external spectrogram backends and
// collapses them into perceptually spaced band energies, the usual front
// end for MFCC-style feature extraction.
package melbank
