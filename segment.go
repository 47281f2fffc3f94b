package easetimeline

import (
	"fmt"
)

// Segment is a contiguous time interval with a linear value range shaped
// by an easing curve.
//
// The segment interpolates from ValueStart at TimeStart to ValueEnd at
// TimeEnd, with the easing kind controlling the shape of the transition
// in between. Fields are exported for introspection; a host that mutates
// Ease, ValueStart or ValueEnd on an [IntegratingSegment] must call
// [IntegratingSegment.RebuildCache] afterwards, or use
// [Timeline.SetEase] which does both atomically.
type Segment struct {
	// TimeStart and TimeEnd bound the interval. TimeEnd > TimeStart.
	TimeStart float64
	TimeEnd   float64

	// ValueStart and ValueEnd are the values at the interval bounds.
	ValueStart float64
	ValueEnd   float64

	// Ease selects the curve shape between the two values.
	Ease Kind
}

// NewSegment creates a segment, validating that the interval is non-empty.
func NewSegment(timeStart, timeEnd, valueStart, valueEnd float64, kind Kind) (Segment, error) {
	if timeEnd <= timeStart {
		return Segment{}, fmt.Errorf("%w: segment end %v not after start %v", ErrInvalidConfig, timeEnd, timeStart)
	}

	return Segment{
		TimeStart:  timeStart,
		TimeEnd:    timeEnd,
		ValueStart: valueStart,
		ValueEnd:   valueEnd,
		Ease:       kind,
	}, nil
}

// Duration returns the length of the segment's interval.
func (s *Segment) Duration() float64 {
	return s.TimeEnd - s.TimeStart
}

// Evaluate returns the segment's value at time t:
//
//	ValueStart + (ValueEnd - ValueStart) · Ease(kind, (t-TimeStart)/(TimeEnd-TimeStart))
//
// The progress ratio is not clamped, so t outside the interval
// extrapolates through the easing formula.
func (s *Segment) Evaluate(t float64) float64 {
	ratio := (t - s.TimeStart) / (s.TimeEnd - s.TimeStart)
	return s.ValueStart + (s.ValueEnd-s.ValueStart)*Ease(s.Ease, ratio)
}

// Split divides the segment at time t into two children that exactly
// partition the interval and share the parent's easing kind. The boundary
// value is the parent's Evaluate(t), so the pair is continuous at t.
//
// t must lie strictly inside the interval; splitting at either bound
// fails with [ErrOutOfRange].
func (s *Segment) Split(t float64) (Segment, Segment, error) {
	if t <= s.TimeStart || t >= s.TimeEnd {
		return Segment{}, Segment{}, fmt.Errorf("%w: split point %v not inside (%v, %v)", ErrOutOfRange, t, s.TimeStart, s.TimeEnd)
	}

	mid := s.Evaluate(t)

	left := Segment{
		TimeStart:  s.TimeStart,
		TimeEnd:    t,
		ValueStart: s.ValueStart,
		ValueEnd:   mid,
		Ease:       s.Ease,
	}
	right := Segment{
		TimeStart:  t,
		TimeEnd:    s.TimeEnd,
		ValueStart: mid,
		ValueEnd:   s.ValueEnd,
		Ease:       s.Ease,
	}

	return left, right, nil
}
