package easetimeline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-ease-timeline/internal/testutil"
)

// TestNew_Validation tests construction failures.
func TestNew_Validation(t *testing.T) {
	_, err := New(0, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(-5, DefaultConfig())
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(10, Config{Step: 0, BlockLength: 0.1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

// TestNew_InitialPartition tests the single full-span zero segment.
func TestNew_InitialPartition(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)

	require.Equal(t, 1, tl.Len())
	assert.Equal(t, 10.0, tl.Duration())

	seg := tl.Segments()[0]
	assert.Equal(t, 0.0, seg.TimeStart)
	assert.Equal(t, 10.0, seg.TimeEnd)
	assert.Equal(t, 0.0, seg.ValueStart)
	assert.Equal(t, 0.0, seg.ValueEnd)
	assert.Equal(t, KindLinear, seg.Ease)
}

// TestDisplacement_ZeroTimeline tests that a fresh timeline integrates
// to zero everywhere.
func TestDisplacement_ZeroTimeline(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)

	d, err := tl.Displacement(2, 8)
	require.NoError(t, err)
	assert.Zero(t, d)
}

// TestSplit_Basic tests that one split yields two contiguous zero-valued
// linear segments.
func TestSplit_Basic(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)

	require.NoError(t, tl.Split(5))
	require.Equal(t, 2, tl.Len())

	segs := tl.Segments()
	assert.Equal(t, 0.0, segs[0].TimeStart)
	assert.Equal(t, 5.0, segs[0].TimeEnd)
	assert.Equal(t, 5.0, segs[1].TimeStart)
	assert.Equal(t, 10.0, segs[1].TimeEnd)

	for _, seg := range segs {
		assert.Equal(t, KindLinear, seg.Ease)
		assert.Zero(t, seg.ValueStart)
		assert.Zero(t, seg.ValueEnd)
	}
}

// TestSplit_Boundary tests that splits on segment bounds are rejected.
func TestSplit_Boundary(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)
	require.NoError(t, tl.Split(5))

	for _, at := range []float64{0, 5, 10, -1, 11} {
		err := tl.Split(at)
		assert.ErrorIs(t, err, ErrOutOfRange, "split at %v should fail", at)
		assert.Equal(t, 2, tl.Len(), "failed split must not mutate the partition")
	}
}

// TestSplit_CoverageInvariant tests ordering, contiguity and full
// coverage after a sequence of splits.
func TestSplit_CoverageInvariant(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)

	for _, at := range []float64{7.3, 2.1, 5, 8.8, 0.4, 6.2} {
		require.NoError(t, tl.Split(at))
	}

	segs := tl.Segments()
	require.Len(t, segs, 7)

	assert.Equal(t, 0.0, segs[0].TimeStart)
	assert.Equal(t, tl.Duration(), segs[len(segs)-1].TimeEnd)

	for i := 1; i < len(segs); i++ {
		assert.Equal(t, segs[i-1].TimeEnd, segs[i].TimeStart,
			"segments %d and %d must be contiguous", i-1, i)
		assert.Less(t, segs[i].TimeStart, segs[i].TimeEnd)
	}
}

// TestDisplacement_InSineScenario splits a 10-unit timeline at 5, eases
// the second half in-sine from 0 to 1, and checks the integral over
// [7, 9] against an independently computed quadrature.
func TestDisplacement_InSineScenario(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)

	require.NoError(t, tl.Split(5))
	require.NoError(t, tl.SetEase(7, KindInSine, 0, 1))

	got, err := tl.Displacement(7, 9)
	require.NoError(t, err)

	// Reference: left-endpoint quadrature of 1 - cos((t-5)/5 · π/2)
	// over [7, 9] with the default step.
	want := testutil.LeftRiemann(func(t float64) float64 {
		return 1 - math.Cos((t-5)/5*math.Pi/2)
	}, 7, 9, DefaultStep)

	assert.InDelta(t, want, got, testutil.QuadTolerance)
}

// TestDisplacement_Errors tests range validation at the timeline level.
func TestDisplacement_Errors(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)

	_, err = tl.Displacement(6, 4)
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = tl.Displacement(-1, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = tl.Displacement(4, 10.5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// TestDisplacement_MultiSegmentWalk tests a query spanning more than two
// segments, so the walk must advance through fully-covered interior
// segments of every kind.
func TestDisplacement_MultiSegmentWalk(t *testing.T) {
	tl, err := NewDefault(12)
	require.NoError(t, err)

	require.NoError(t, tl.Split(3))
	require.NoError(t, tl.Split(6))
	require.NoError(t, tl.Split(9))

	// [0,3] linear ramp up, [3,6] constant, [6,9] eased decay, [9,12]
	// constant zero.
	require.NoError(t, tl.SetEase(1, KindLinear, 0, 2))
	require.NoError(t, tl.SetEase(4, KindNone, 2, 2))
	require.NoError(t, tl.SetEase(7, KindOutQuad, 2, 0))

	got, err := tl.Displacement(1, 11)
	require.NoError(t, err)

	// Per-segment reference values: trapezoid on the ramp, rectangle on
	// the plateau, quadrature on the eased decay, zero on the tail.
	ramp := (2.0/3.0 + 2) / 2 * 2
	plateau := 2.0 * 3
	decay := testutil.LeftRiemann(func(t float64) float64 {
		return 2 - 2*Ease(KindOutQuad, (t-6)/3)
	}, 6, 9, DefaultStep)

	assert.InDelta(t, ramp+plateau+decay, got, testutil.QuadTolerance)
}

// TestDisplacement_CrossBoundaryAdditivity tests additivity of queries
// that meet at a segment boundary.
func TestDisplacement_CrossBoundaryAdditivity(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)

	require.NoError(t, tl.Split(4))
	require.NoError(t, tl.SetEase(2, KindInCubic, 0, 1))
	require.NoError(t, tl.SetEase(6, KindOutCubic, 1, 0))

	whole, err := tl.Displacement(1, 9)
	require.NoError(t, err)

	left, err := tl.Displacement(1, 4)
	require.NoError(t, err)

	right, err := tl.Displacement(4, 9)
	require.NoError(t, err)

	assert.InDelta(t, whole, left+right, testutil.QuadTolerance)
}

// TestSetEase_NoStaleCache tests that SetEase leaves the segment
// indistinguishable from one built fresh with the same parameters.
func TestSetEase_NoStaleCache(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)
	require.NoError(t, tl.SetEase(5, KindOutBounce, 1, 3))

	fresh, err := NewIntegratingSegment(Segment{
		TimeStart:  0,
		TimeEnd:    10,
		ValueStart: 1,
		ValueEnd:   3,
		Ease:       KindOutBounce,
	}, DefaultConfig())
	require.NoError(t, err)

	got, err := tl.Displacement(2.3, 8.9)
	require.NoError(t, err)
	assert.InDelta(t, fresh.Displacement(2.3, 8.9), got, testutil.ExactTolerance)
}

// TestValue tests point evaluation through the partition.
func TestValue(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)
	require.NoError(t, tl.Split(5))
	require.NoError(t, tl.SetEase(7, KindLinear, 0, 10))

	v, err := tl.Value(7.5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, testutil.ExactTolerance)

	_, err = tl.Value(-0.5)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = tl.Value(10.5)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// TestSegmentAt tests inclusive segment lookup.
func TestSegmentAt(t *testing.T) {
	tl, err := NewDefault(10)
	require.NoError(t, err)
	require.NoError(t, tl.Split(5))

	seg, err := tl.SegmentAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, seg.TimeStart)

	seg, err = tl.SegmentAt(10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, seg.TimeEnd)

	_, err = tl.SegmentAt(12)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// BenchmarkTimelineDisplacement benchmarks a query spanning several
// segments with mixed kinds.
func BenchmarkTimelineDisplacement(b *testing.B) {
	tl, err := NewDefault(100)
	if err != nil {
		b.Fatal(err)
	}

	for _, at := range []float64{20, 40, 60, 80} {
		if err := tl.Split(at); err != nil {
			b.Fatal(err)
		}
	}
	_ = tl.SetEase(10, KindInSine, 0, 1)
	_ = tl.SetEase(50, KindOutElastic, 1, 0)

	for b.Loop() {
		_, _ = tl.Displacement(5, 95)
	}
}
