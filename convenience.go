package easetimeline

// NewDefault creates a timeline spanning [0, duration] with the default
// integration parameters.
func NewDefault(duration float64) (*Timeline, error) {
	return New(duration, DefaultConfig())
}

// NewRamp creates a single-segment timeline easing from `from` to `to`
// over the whole duration with the given curve kind.
func NewRamp(duration, from, to float64, kind Kind, cfg Config) (*Timeline, error) {
	tl, err := New(duration, cfg)
	if err != nil {
		return nil, err
	}

	if err := tl.SetEase(0, kind, from, to); err != nil {
		return nil, err
	}

	return tl, nil
}

// NewConstant creates a single-segment timeline holding a constant value
// over the whole duration.
func NewConstant(duration, value float64, cfg Config) (*Timeline, error) {
	return NewRamp(duration, value, value, KindNone, cfg)
}

// SampleCurve evaluates an easing curve at n evenly spaced points across
// [0, 1], endpoints included. Useful for plotting and table generation.
// Returns nil for n < 2.
func SampleCurve(kind Kind, n int) []float64 {
	if n < 2 {
		return nil
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = Ease(kind, float64(i)/float64(n-1))
	}

	return out
}
