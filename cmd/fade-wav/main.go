// Command fade-wav applies eased fade-in and fade-out envelopes to WAV
// audio files.
//
// Usage:
//
//	fade-wav -fade-in 2 -fade-out 3 input.wav output.wav
//	fade-wav -fade-in 1.5 -curve-in in-sine -curve-out out-quad input.wav output.wav
//
// The envelope is a gain timeline: it ramps from 0 to 1 over the fade-in
// with the selected easing curve, holds 1, and ramps back to 0 over the
// fade-out. The tool reports the average gain over the whole file,
// computed as the envelope's displacement divided by its duration.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

const (
	// CLI defaults
	defaultFadeIn   = 1.0
	defaultFadeOut  = 1.0
	defaultCurveIn  = "in-sine"
	defaultCurveOut = "out-sine"

	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	fadeIn := flag.Float64("fade-in", defaultFadeIn, "Fade-in duration in seconds")
	fadeOut := flag.Float64("fade-out", defaultFadeOut, "Fade-out duration in seconds")
	curveIn := flag.String("curve-in", defaultCurveIn, "Fade-in easing curve (e.g. in-sine, in-quad, in-cubic)")
	curveOut := flag.String("curve-out", defaultCurveOut, "Fade-out easing curve (e.g. out-sine, out-quad, out-expo)")
	verbose := flag.Bool("verbose", false, "Print detailed processing information")
	flag.Parse()

	if flag.NArg() < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	inKind, err := parseCurve(*curveIn)
	if err != nil {
		return err
	}

	outKind, err := parseCurve(*curveOut)
	if err != nil {
		return err
	}

	input, err := readWAV(inputPath, *verbose)
	if err != nil {
		return err
	}

	durationSec := float64(input.frames) / float64(input.format.SampleRate)

	envelope, err := buildEnvelope(durationSec, *fadeIn, *fadeOut, inKind, outKind)
	if err != nil {
		return err
	}

	start := time.Now()

	if err := applyEnvelope(input, envelope); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Applied envelope to %d frames in %v", input.frames, time.Since(start))
	}

	if err := writeWAV(outputPath, input); err != nil {
		return err
	}

	avg, err := envelope.Displacement(0, envelope.Duration())
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s: %.2fs, fade-in %.2fs (%s), fade-out %.2fs (%s), average gain %.3f\n",
		outputPath, durationSec, *fadeIn, inKind, *fadeOut, outKind, avg/envelope.Duration())

	return nil
}
