package easetimeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-ease-timeline/internal/testutil"
)

// TestNewSegment_Validation tests interval validation.
func TestNewSegment_Validation(t *testing.T) {
	_, err := NewSegment(5, 5, 0, 1, KindLinear)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewSegment(5, 3, 0, 1, KindLinear)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	seg, err := NewSegment(0, 10, -1, 1, KindInSine)
	require.NoError(t, err)
	assert.Equal(t, 10.0, seg.Duration())
}

// TestSegment_EvaluateBounds tests that every kind hits its declared
// values at the interval bounds.
func TestSegment_EvaluateBounds(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			seg := Segment{TimeStart: 2, TimeEnd: 8, ValueStart: -3, ValueEnd: 5, Ease: kind}

			if kind == KindNone {
				// The null curve holds ValueStart everywhere.
				assert.Equal(t, seg.ValueStart, seg.Evaluate(2))
				assert.Equal(t, seg.ValueStart, seg.Evaluate(8))
				return
			}

			assert.InDelta(t, seg.ValueStart, seg.Evaluate(2), testutil.ExactTolerance)
			assert.InDelta(t, seg.ValueEnd, seg.Evaluate(8), testutil.ExactTolerance)
		})
	}
}

// TestSegment_EvaluateLinear tests linear interpolation at interior points.
func TestSegment_EvaluateLinear(t *testing.T) {
	seg := Segment{TimeStart: 0, TimeEnd: 10, ValueStart: 0, ValueEnd: 100, Ease: KindLinear}

	tests := []struct {
		t        float64
		expected float64
	}{
		{0, 0},
		{2.5, 25},
		{5, 50},
		{10, 100},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, seg.Evaluate(tt.t), testutil.ExactTolerance)
	}
}

// TestSegment_EvaluateExtrapolates tests that out-of-interval times
// extrapolate through the formula instead of clamping.
func TestSegment_EvaluateExtrapolates(t *testing.T) {
	seg := Segment{TimeStart: 0, TimeEnd: 10, ValueStart: 0, ValueEnd: 100, Ease: KindLinear}

	assert.InDelta(t, -10.0, seg.Evaluate(-1), testutil.ExactTolerance)
	assert.InDelta(t, 110.0, seg.Evaluate(11), testutil.ExactTolerance)
}

// TestSegment_Split tests the continuity and partition invariants.
func TestSegment_Split(t *testing.T) {
	for _, kind := range []Kind{KindLinear, KindInSine, KindOutBounce, KindInOutElastic} {
		t.Run(kind.String(), func(t *testing.T) {
			seg := Segment{TimeStart: 1, TimeEnd: 9, ValueStart: 0, ValueEnd: 4, Ease: kind}

			left, right, err := seg.Split(3.5)
			require.NoError(t, err)

			// Children exactly partition the parent interval.
			assert.Equal(t, seg.TimeStart, left.TimeStart)
			assert.Equal(t, 3.5, left.TimeEnd)
			assert.Equal(t, 3.5, right.TimeStart)
			assert.Equal(t, seg.TimeEnd, right.TimeEnd)

			// Shared boundary value equals the parent's evaluation.
			mid := seg.Evaluate(3.5)
			assert.Equal(t, mid, left.ValueEnd)
			assert.Equal(t, mid, right.ValueStart)

			// Outer values and kind are preserved.
			assert.Equal(t, seg.ValueStart, left.ValueStart)
			assert.Equal(t, seg.ValueEnd, right.ValueEnd)
			assert.Equal(t, kind, left.Ease)
			assert.Equal(t, kind, right.Ease)
		})
	}
}

// TestSegment_SplitBoundary tests that boundary and outside split points
// are rejected.
func TestSegment_SplitBoundary(t *testing.T) {
	seg := Segment{TimeStart: 1, TimeEnd: 9, ValueStart: 0, ValueEnd: 4, Ease: KindLinear}

	for _, at := range []float64{1, 9, 0.5, 9.5, -2} {
		_, _, err := seg.Split(at)
		assert.ErrorIs(t, err, ErrOutOfRange, "split at %v should fail", at)
	}
}
