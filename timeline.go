package easetimeline

import (
	"errors"
	"fmt"
	"sort"
)

// Common errors returned by the timeline.
var (
	// ErrInvalidConfig indicates invalid construction parameters.
	ErrInvalidConfig = errors.New("invalid timeline configuration")

	// ErrInvalidRange indicates a start/end pair given in the wrong order.
	ErrInvalidRange = errors.New("invalid time range")

	// ErrOutOfRange indicates a timestamp outside the owning interval, or
	// a split point on or outside a segment's open interval.
	ErrOutOfRange = errors.New("time out of range")

	// ErrNotFound indicates a timestamp resolved to no segment. The
	// partition is gap-free by construction, so this signals internal
	// corruption rather than a caller mistake.
	ErrNotFound = errors.New("no segment contains time")
)

// Timeline partitions a fixed-length time span into contiguous,
// splittable easing segments and answers displacement (time-integral)
// queries over arbitrary sub-ranges.
//
// A new timeline spans [0, duration] with a single zero-valued linear
// segment. [Timeline.Split] refines the partition; segments stay ordered,
// gap-free and non-overlapping throughout. Failing operations leave the
// partition and all caches untouched.
//
// A Timeline is not safe for concurrent use.
type Timeline struct {
	duration float64
	cfg      Config
	segments []*IntegratingSegment
}

// New creates a timeline spanning [0, duration] with the given
// integration parameters. The initial partition is one full-span
// KindLinear segment with both values 0.
func New(duration float64, cfg Config) (*Timeline, error) {
	if duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidConfig, duration)
	}

	seg, err := NewIntegratingSegment(Segment{
		TimeStart: 0,
		TimeEnd:   duration,
		Ease:      KindLinear,
	}, cfg)
	if err != nil {
		return nil, err
	}

	return &Timeline{
		duration: duration,
		cfg:      cfg,
		segments: []*IntegratingSegment{seg},
	}, nil
}

// Duration returns the fixed total span of the timeline.
func (tl *Timeline) Duration() float64 {
	return tl.duration
}

// Config returns the integration parameters the timeline was built with.
func (tl *Timeline) Config() Config {
	return tl.cfg
}

// Len returns the number of segments in the partition.
func (tl *Timeline) Len() int {
	return len(tl.segments)
}

// Segments returns the ordered segments of the partition. The slice is a
// copy but the segments are shared; callers must not hold a segment
// across a split of that same segment.
func (tl *Timeline) Segments() []*IntegratingSegment {
	out := make([]*IntegratingSegment, len(tl.segments))
	copy(out, tl.segments)
	return out
}

// SegmentAt returns the segment whose interval contains t (inclusive at
// both bounds). Fails with [ErrOutOfRange] when t is outside
// [0, duration].
func (tl *Timeline) SegmentAt(t float64) (*IntegratingSegment, error) {
	i, err := tl.findInclusive(t)
	if err != nil {
		return nil, err
	}

	return tl.segments[i], nil
}

// Value evaluates the timeline's curve at time t.
func (tl *Timeline) Value(t float64) (float64, error) {
	i, err := tl.findInclusive(t)
	if err != nil {
		return 0, err
	}

	return tl.segments[i].Evaluate(t), nil
}

// Split divides the segment strictly containing t into two children at t,
// preserving continuity and total coverage. Splitting at 0, at the
// duration, or at any existing segment boundary fails with
// [ErrOutOfRange].
func (tl *Timeline) Split(t float64) error {
	i, err := tl.findStrict(t)
	if err != nil {
		return err
	}

	left, right, err := tl.segments[i].Split(t)
	if err != nil {
		return err
	}

	tl.segments = append(tl.segments, nil)
	copy(tl.segments[i+2:], tl.segments[i+1:])
	tl.segments[i] = left
	tl.segments[i+1] = right

	return nil
}

// SetEase reassigns the curve kind and value bounds of the segment
// containing t and rebuilds its cache in one step, so the cache can never
// be observed stale.
//
// Hosts that mutate a segment's exported fields directly must call
// [IntegratingSegment.RebuildCache] themselves instead.
func (tl *Timeline) SetEase(t float64, kind Kind, valueStart, valueEnd float64) error {
	i, err := tl.findInclusive(t)
	if err != nil {
		return err
	}

	s := tl.segments[i]
	s.Ease = kind
	s.ValueStart = valueStart
	s.ValueEnd = valueEnd
	s.RebuildCache()

	return nil
}

// Displacement returns the integral of the timeline's value over [a, b].
//
// Fails with [ErrInvalidRange] when a > b, and with [ErrOutOfRange] when
// either endpoint is outside [0, duration]. A query inside a single
// segment delegates to that segment; otherwise the boundary segments
// contribute partial integrals and every fully-spanned segment in between
// contributes its cached total.
func (tl *Timeline) Displacement(a, b float64) (float64, error) {
	if a > b {
		return 0, fmt.Errorf("%w: start %v after end %v", ErrInvalidRange, a, b)
	}

	i, err := tl.findInclusive(a)
	if err != nil {
		return 0, err
	}

	j, err := tl.findInclusive(b)
	if err != nil {
		return 0, err
	}

	if i == j {
		return tl.segments[i].Displacement(a, b), nil
	}

	total := tl.segments[i].Displacement(a, tl.segments[i].TimeEnd)

	for k := i + 1; k < j; k++ {
		total += tl.segments[k].fullDisplacement()
	}

	total += tl.segments[j].Displacement(tl.segments[j].TimeStart, b)

	return total, nil
}

// locate returns the index of the first segment whose TimeEnd exceeds t.
// The partition is ordered by TimeStart, so this is the only candidate
// that can contain t.
func (tl *Timeline) locate(t float64) int {
	return sort.Search(len(tl.segments), func(i int) bool {
		return tl.segments[i].TimeEnd > t
	})
}

// findStrict resolves t to the segment with TimeStart < t < TimeEnd.
// Exact boundary matches are rejected with [ErrOutOfRange]; split lookups
// use this so a boundary time never picks an adjacent segment
// ambiguously.
func (tl *Timeline) findStrict(t float64) (int, error) {
	i := tl.locate(t)
	if i == len(tl.segments) {
		return 0, fmt.Errorf("%w: %v not inside (0, %v)", ErrOutOfRange, t, tl.duration)
	}

	s := tl.segments[i]
	if t <= s.TimeStart || t >= s.TimeEnd {
		return 0, fmt.Errorf("%w: %v on a segment boundary or outside (0, %v)", ErrOutOfRange, t, tl.duration)
	}

	return i, nil
}

// findInclusive resolves t to a segment with TimeStart ≤ t ≤ TimeEnd,
// failing with [ErrOutOfRange] outside [0, duration]. ErrNotFound guards
// against a corrupted partition and should not occur.
func (tl *Timeline) findInclusive(t float64) (int, error) {
	if t < 0 || t > tl.duration {
		return 0, fmt.Errorf("%w: %v outside [0, %v]", ErrOutOfRange, t, tl.duration)
	}

	i := tl.locate(t)
	if i == len(tl.segments) {
		// t == duration; only the last segment can contain it.
		i--
	}

	s := tl.segments[i]
	if t < s.TimeStart || t > s.TimeEnd {
		return 0, fmt.Errorf("%w: %v", ErrNotFound, t)
	}

	return i, nil
}
