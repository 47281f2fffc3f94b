package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	easetimeline "github.com/tphakala/go-ease-timeline"
)

const wavAudioFormatPCM = 1

// wavInput holds a fully decoded WAV file.
type wavInput struct {
	buf      *audio.IntBuffer
	format   *audio.Format
	bitDepth int
	frames   int
}

// readWAV opens and decodes a WAV file into memory.
func readWAV(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	format := buf.Format
	frames := len(buf.Data) / format.NumChannels

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit, %d frames",
			format.SampleRate, format.NumChannels, decoder.BitDepth, frames)
	}

	return &wavInput{
		buf:      buf,
		format:   format,
		bitDepth: int(decoder.BitDepth),
		frames:   frames,
	}, nil
}

// writeWAV encodes the buffer back to a WAV file.
func writeWAV(path string, input *wavInput) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	encoder := wav.NewEncoder(f, input.format.SampleRate, input.bitDepth,
		input.format.NumChannels, wavAudioFormatPCM)

	if err := encoder.Write(input.buf); err != nil {
		_ = encoder.Close()
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := encoder.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	return f.Close()
}

// parseCurve resolves a curve name, rejecting unknown names instead of
// silently falling back to the null curve.
func parseCurve(name string) (easetimeline.Kind, error) {
	kind, ok := easetimeline.ParseKind(name)
	if !ok {
		return easetimeline.KindNone, fmt.Errorf("unknown curve %q (e.g. in-sine, out-quad, in-out-cubic)", name)
	}

	return kind, nil
}

// buildEnvelope constructs the gain timeline: 0→1 over the fade-in, a
// hold at 1, and 1→0 over the fade-out.
func buildEnvelope(durationSec, fadeIn, fadeOut float64, inKind, outKind easetimeline.Kind) (*easetimeline.Timeline, error) {
	if fadeIn < 0 || fadeOut < 0 {
		return nil, fmt.Errorf("fade durations must not be negative")
	}

	if fadeIn+fadeOut > durationSec {
		return nil, fmt.Errorf("fades (%.2fs + %.2fs) exceed file duration %.2fs", fadeIn, fadeOut, durationSec)
	}

	tl, err := easetimeline.NewDefault(durationSec)
	if err != nil {
		return nil, err
	}

	if fadeIn > 0 && fadeIn < durationSec {
		if err := tl.Split(fadeIn); err != nil {
			return nil, err
		}
	}

	fadeOutStart := durationSec - fadeOut
	if fadeOut > 0 && fadeOutStart > 0 && fadeOutStart > fadeIn {
		if err := tl.Split(fadeOutStart); err != nil {
			return nil, err
		}
	}

	// Shape each region through its midpoint, which is unambiguous even
	// when regions collapse.
	if fadeIn > 0 {
		if err := tl.SetEase(fadeIn/2, inKind, 0, 1); err != nil {
			return nil, err
		}
	}

	if fadeOutStart > fadeIn {
		hold := (fadeIn + fadeOutStart) / 2
		if err := tl.SetEase(hold, easetimeline.KindNone, 1, 1); err != nil {
			return nil, err
		}
	}

	if fadeOut > 0 {
		if err := tl.SetEase((fadeOutStart+durationSec)/2, outKind, 1, 0); err != nil {
			return nil, err
		}
	}

	return tl, nil
}

// applyEnvelope scales every frame of the buffer by the envelope's value
// at that frame's time. Samples are clamped to the bit depth's range, so
// overshooting curves cannot wrap.
func applyEnvelope(input *wavInput, envelope *easetimeline.Timeline) error {
	rate := float64(input.format.SampleRate)
	channels := input.format.NumChannels

	maxSample := float64(int64(1)<<(input.bitDepth-1)) - 1
	minSample := -maxSample - 1

	for frame := 0; frame < input.frames; frame++ {
		gain, err := envelope.Value(float64(frame) / rate)
		if err != nil {
			return fmt.Errorf("envelope evaluation failed at frame %d: %w", frame, err)
		}

		for ch := 0; ch < channels; ch++ {
			i := frame*channels + ch
			scaled := math.Round(float64(input.buf.Data[i]) * gain)
			input.buf.Data[i] = int(math.Max(minSample, math.Min(maxSample, scaled)))
		}
	}

	return nil
}
