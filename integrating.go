package easetimeline

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-ease-timeline/internal/quad"
)

// IntegratingSegment extends [Segment] with numeric integration of its
// value over time, backed by a block cache of precomputed partial
// integrals.
//
// The cache holds one integral per BlockLength-sized block of the
// interval (the final block may be shorter). Range queries spanning
// multiple blocks then cost two boundary corrections plus a cached middle
// sum, instead of a full re-integration.
//
// KindNone and KindLinear have closed-form range queries and never
// populate the cache.
type IntegratingSegment struct {
	Segment

	cfg    Config
	blocks []float64
}

// NewIntegratingSegment creates an integrating segment over seg using the
// given integration parameters, and builds its block cache.
func NewIntegratingSegment(seg Segment, cfg Config) (*IntegratingSegment, error) {
	if seg.TimeEnd <= seg.TimeStart {
		return nil, fmt.Errorf("%w: segment end %v not after start %v", ErrInvalidConfig, seg.TimeEnd, seg.TimeStart)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &IntegratingSegment{
		Segment: seg,
		cfg:     cfg,
	}
	s.RebuildCache()

	return s, nil
}

// Config returns the integration parameters the segment was built with.
func (s *IntegratingSegment) Config() Config {
	return s.cfg
}

// CalculateDisplacement computes the definite integral of Evaluate over
// [a, b] by fixed-step left-endpoint quadrature, without consulting the
// block cache.
//
// Fails with [ErrInvalidRange] when a > b, and with [ErrOutOfRange] when
// either endpoint lies outside the segment's interval.
func (s *IntegratingSegment) CalculateDisplacement(a, b float64) (float64, error) {
	if a > b {
		return 0, fmt.Errorf("%w: start %v after end %v", ErrInvalidRange, a, b)
	}

	if a < s.TimeStart || b > s.TimeEnd {
		return 0, fmt.Errorf("%w: [%v, %v] outside segment [%v, %v]", ErrOutOfRange, a, b, s.TimeStart, s.TimeEnd)
	}

	return quad.LeftRiemann(s.Evaluate, a, b, s.cfg.Step), nil
}

// RebuildCache discards and recomputes the block cache.
//
// Must be called after any mutation of Ease, ValueStart or ValueEnd;
// until then range queries read stale integrals. KindNone and KindLinear
// leave the cache empty, since their range queries have closed forms.
func (s *IntegratingSegment) RebuildCache() {
	s.blocks = s.blocks[:0]

	if s.Ease == KindNone || s.Ease == KindLinear {
		return
	}

	n := s.blockCount()
	if cap(s.blocks) < n {
		s.blocks = make([]float64, 0, n)
	}

	for k := 0; k < n; k++ {
		a := s.blockStart(k)
		b := s.blockStart(k + 1)
		s.blocks = append(s.blocks, quad.LeftRiemann(s.Evaluate, a, b, s.cfg.Step))
	}
}

// CacheLen returns the number of cached blocks. Zero for KindNone and
// KindLinear segments.
func (s *IntegratingSegment) CacheLen() int {
	return len(s.blocks)
}

// TotalDisplacement returns the sum of all cached block integrals, i.e.
// the displacement over the whole interval.
//
// Only meaningful when the cache is populated; for KindNone and
// KindLinear it returns 0 and callers should use
// Displacement(TimeStart, TimeEnd) instead.
func (s *IntegratingSegment) TotalDisplacement() float64 {
	return f64.Sum(s.blocks)
}

// Displacement returns the displacement over [a, b], stitching cached
// block sums with freshly integrated partial blocks at the boundaries.
//
// Unlike [IntegratingSegment.CalculateDisplacement] this never fails:
// it returns 0 when a ≥ b and clamps both endpoints into the segment's
// interval. Queries confined to a single block integrate directly, which
// avoids stitching error where the cache cannot help anyway.
func (s *IntegratingSegment) Displacement(a, b float64) float64 {
	if a >= b {
		return 0
	}

	a = math.Max(a, s.TimeStart)
	b = math.Min(b, s.TimeEnd)

	if a >= b {
		return 0
	}

	i := s.blockIndex(a)
	j := s.blockIndex(b)

	if i == j {
		return quad.LeftRiemann(s.Evaluate, a, b, s.cfg.Step)
	}

	switch s.Ease {
	case KindNone:
		// Constant value ValueStart over the whole query range.
		return s.ValueStart * (b - a)
	case KindLinear:
		return quad.Trapezoid(s.Evaluate(a), s.Evaluate(b), a, b)
	}

	// The cache is empty when the kind was reassigned without a rebuild.
	// Integrate directly rather than stitch against missing blocks.
	if len(s.blocks) == 0 {
		return quad.LeftRiemann(s.Evaluate, a, b, s.cfg.Step)
	}

	left := quad.LeftRiemann(s.Evaluate, a, s.blockStart(i+1), s.cfg.Step)
	middle := f64.Sum(s.blocks[i+1 : j])
	right := quad.LeftRiemann(s.Evaluate, s.blockStart(j), b, s.cfg.Step)

	return left + middle + right
}

// Split divides the segment at time t as [Segment.Split] does, returning
// two integrating children. Block caches are range-specific and cannot be
// inherited, so each child rebuilds its own before being returned.
func (s *IntegratingSegment) Split(t float64) (*IntegratingSegment, *IntegratingSegment, error) {
	l, r, err := s.Segment.Split(t)
	if err != nil {
		return nil, nil, err
	}

	left := &IntegratingSegment{Segment: l, cfg: s.cfg}
	right := &IntegratingSegment{Segment: r, cfg: s.cfg}

	left.RebuildCache()
	right.RebuildCache()

	return left, right, nil
}

// fullDisplacement returns the displacement over the whole interval using
// whichever path is exact and cheap for the kind.
func (s *IntegratingSegment) fullDisplacement() float64 {
	if s.Ease == KindNone || s.Ease == KindLinear {
		return s.Displacement(s.TimeStart, s.TimeEnd)
	}

	return s.TotalDisplacement()
}

// blockCount returns the number of BlockLength-sized blocks covering the
// interval, counting the truncated final block.
func (s *IntegratingSegment) blockCount() int {
	return int(math.Ceil(s.Duration() / s.cfg.BlockLength))
}

// blockIndex returns the index of the block containing t. A t exactly at
// TimeEnd may index one past the last block; callers integrate
// zero-length partials there, so no clamping is needed.
func (s *IntegratingSegment) blockIndex(t float64) int {
	return int((t - s.TimeStart) / s.cfg.BlockLength)
}

// blockStart returns the start time of block k, capped at TimeEnd for
// the one-past-the-end index.
func (s *IntegratingSegment) blockStart(k int) float64 {
	return math.Min(s.TimeStart+float64(k)*s.cfg.BlockLength, s.TimeEnd)
}
