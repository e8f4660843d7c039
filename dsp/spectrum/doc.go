// Package spectrum provides FFT-adjacent spectrum-domain utilities.
//
// The package intentionally does not implement FFT itself. It operates on
// complex spectrum bins produced by external FFT backends and converts
// them to the real magnitude or power form that downstream frame
// consumers (filter banks, feature extractors) work on.
package spectrum
