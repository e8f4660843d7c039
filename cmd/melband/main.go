// Command melband extracts mel filter bank band energies from audio files.
//
// Usage:
//
//	melband [flags] file.{wav,flac}
//
// The file is decoded, run through an external STFT producer, and the
// resulting spectral frames are collapsed into per-frame mel band
// energies written as CSV to stdout (one row per frame).
//
// Examples:
//
//	melband -bands 26 speech.wav
//	melband -fft 1024 -hop 256 -power -db take.flac
//	melband -png bands.png speech.wav
//	melband -list -bands 12
package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/wav"
	"github.com/r9y9/gossp/stft"

	"github.com/cwbudde/algo-melbank/dsp/buffer"
	"github.com/cwbudde/algo-melbank/dsp/core"
	"github.com/cwbudde/algo-melbank/dsp/melbank"
	"github.com/cwbudde/algo-melbank/dsp/spectrum"
)

func main() {
	bands := flag.Int("bands", 20, "number of mel bands")
	loCut := flag.Float64("lo", 0, "low cutoff frequency in Hz")
	hiCut := flag.Float64("hi", 0, "high cutoff frequency in Hz (0 = Nyquist)")
	fftSize := flag.Int("fft", 512, "FFT size in samples")
	hop := flag.Int("hop", 160, "hop size between frames in samples")
	power := flag.Bool("power", false, "use power spectra instead of magnitudes")
	db := flag.Bool("db", false, "convert band energies to dB")
	pngPath := flag.String("png", "", "write a normalized band image to this file instead of CSV")
	list := flag.Bool("list", false, "print the band layout table and exit (no input file)")
	rate := flag.Float64("rate", melbank.DefaultSampleRate, "sample rate in Hz assumed by -list")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: melband [flags] file.{wav,flac}\n\n")
		fmt.Fprintf(os.Stderr, "Extracts per-frame mel band energies from an audio file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  melband -bands 26 speech.wav\n")
		fmt.Fprintf(os.Stderr, "  melband -fft 1024 -hop 256 -power -db take.flac\n")
		fmt.Fprintf(os.Stderr, "  melband -png bands.png speech.wav\n")
		fmt.Fprintf(os.Stderr, "  melband -list -bands 12\n")
	}
	flag.Parse()

	if *list {
		fb, err := newBank(*fftSize, *bands, *loCut, *hiCut, *rate)
		if err != nil {
			fail(err)
		}
		printBands(fb)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	samples, sampleRate, err := decodeAudio(flag.Arg(0))
	if err != nil {
		fail(err)
	}

	fb, err := newBank(*fftSize, *bands, *loCut, *hiCut, sampleRate)
	if err != nil {
		fail(err)
	}

	frames := stft.New(*hop, *fftSize).STFT(samples)

	var fm *spectrum.FrameMatrix
	if *power {
		fm, err = spectrum.PowerFrames(frames, fb.Bins())
	} else {
		fm, err = spectrum.MagnitudeFrames(frames, fb.Bins())
	}
	if err != nil {
		fail(err)
	}

	energies, err := fb.Apply(fm)
	if err != nil {
		fail(err)
	}

	if *db {
		data := energies.Data()
		for i, v := range data {
			data[i] = core.LinearPowerToDB(v)
		}
	}

	if *pngPath != "" {
		if err := writeImage(*pngPath, energies); err != nil {
			fail(err)
		}
		return
	}

	writeCSV(energies)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func newBank(fftSize, bands int, loCut, hiCut, sampleRate float64) (*melbank.FilterBank, error) {
	if hiCut == 0 {
		hiCut = sampleRate / 2
	}
	return melbank.New(fftSize, bands, loCut, hiCut, melbank.WithSampleRate(sampleRate))
}

// decodeAudio reads a WAV or FLAC file and returns its samples mixed
// down to mono, along with the file's sample rate in Hz.
func decodeAudio(path string) ([]float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, format, err = wav.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	default:
		return nil, 0, fmt.Errorf("unsupported audio format %q", ext)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	defer stream.Close()

	var mono []float64
	chunk := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(chunk)
		for _, s := range chunk[:n] {
			mono = append(mono, (s[0]+s[1])/2)
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", path, err)
	}

	return mono, float64(format.SampleRate), nil
}

func printBands(fb *melbank.FilterBank) {
	fmt.Printf("%d bands over %d bins, %.0f Hz sample rate, %.4f Hz per bin\n\n",
		fb.NumBands(), fb.Bins(), fb.SampleRate(), fb.BinSize())

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tLo [bin]\tCenter [bin]\tHi [bin]\tCenter [Hz]\tSpan [bins]\n")
	fmt.Fprintf(tw, "----\t--------\t------------\t--------\t-----------\t-----------\n")
	for band := 0; band < fb.NumBands(); band++ {
		lo, center, hi := fb.Bounds(band)
		fmt.Fprintf(tw, "%d\t%.0f\t%.0f\t%.2f\t%.1f\t%d\n",
			band, lo, center, hi, fb.CenterFrequency(band), fb.Span(band))
	}
	if err := tw.Flush(); err != nil {
		fail(err)
	}
}

func writeCSV(energies *buffer.Matrix) {
	w := bufio.NewWriter(os.Stdout)
	for row := 0; row < energies.Rows(); row++ {
		for band, v := range energies.Row(row) {
			if band > 0 {
				w.WriteByte(',')
			}
			fmt.Fprintf(w, "%g", v)
		}
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		fail(err)
	}
}

// writeImage renders the energy matrix as a min/max-normalized grayscale
// image, frames on the x axis and bands on the y axis with band 0 at the
// bottom.
func writeImage(path string, energies *buffer.Matrix) error {
	frames, bands := energies.Rows(), energies.Cols()
	if frames == 0 || bands == 0 {
		return fmt.Errorf("no band energies to render")
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range energies.Data() {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return fmt.Errorf("no finite band energies to render")
	}
	scale := hi - lo
	if scale == 0 {
		scale = 1
	}

	img := image.NewGray(image.Rect(0, 0, frames, bands))
	for x := 0; x < frames; x++ {
		for y := 0; y < bands; y++ {
			v := core.Clamp((energies.At(x, y)-lo)/scale, 0, 1)
			img.SetGray(x, bands-1-y, color.Gray{Y: uint8(255 * v)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
