package melbank

import "github.com/chewxy/math32"

// HzToMel converts a linear frequency in Hz to the mel scale.
//
// Conversions run in single precision on purpose: bin indices are derived
// from rounded single-precision values, and widening the math would shift
// band edges by a bin for borderline inputs.
func HzToMel(hz float32) float32 {
	return 2595 * (math32.Log(1+hz/700) / math32.Log(10))
}

// MelToHz converts a mel value back to linear frequency in Hz.
func MelToHz(mel float32) float32 {
	return 700 * (math32.Pow(10, mel/2595) - 1)
}

// roundBin mirrors C roundf for the non-negative bin positions produced
// by the builder.
func roundBin(x float32) float32 {
	return math32.Floor(x + 0.5)
}
