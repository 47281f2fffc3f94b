// Package easetimeline computes time-varying scalar values along an
// animation timeline using parametric easing curves, and derives the
// cumulative displacement (time-integral) of those values over arbitrary
// sub-ranges.
//
// When the timeline's value is interpreted as a speed, displacement is
// distance traveled: an eased acceleration curve can be converted into
// physically meaningful accumulated motion without closed-form calculus.
//
// # Features
//
//   - 30 standard easing curves (sine, quad through quint, expo, circ,
//     back, elastic, bounce; in/out/in-out each) plus linear and none
//   - Segmented timelines: split at any interior time, reshape any
//     segment, with continuity and full coverage maintained throughout
//   - Cached numeric integration: per-segment block caches make range
//     queries cost two boundary corrections plus a precomputed middle sum
//   - Closed-form fast paths for constant and linear segments
//   - Pure Go, no CGO; SIMD-accelerated cache summation via
//     github.com/tphakala/simd
//
// # Quick Start
//
//	tl, err := easetimeline.NewDefault(10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Refine the partition and shape the second half.
//	tl.Split(5)
//	tl.SetEase(7, easetimeline.KindInSine, 0, 1)
//
//	// Integrate the curve over [7, 9].
//	d, err := tl.Displacement(7, 9)
//
// # Architecture
//
// A [Timeline] owns an ordered, gap-free sequence of
// [IntegratingSegment] values covering [0, duration]. Each segment
// interpolates linearly between its two bound values, shaped by an
// easing [Kind], and caches the integral of its value over fixed-length
// blocks. A displacement query walks the overlapped segments: boundary
// segments integrate their partial overlap (stitching fresh partial-block
// quadrature with cached full blocks), interior segments contribute their
// cached totals.
//
// Integration uses fixed-step left-endpoint quadrature (see
// internal/quad), reproducible for a given [Config.Step]. Constant and
// linear segments bypass quadrature entirely with exact closed forms.
//
// # Mutating segments
//
// Segment fields are exported for host introspection. Mutating Ease or
// the value bounds of an [IntegratingSegment] directly requires an
// explicit [IntegratingSegment.RebuildCache] call afterwards; skipping it
// leaves the cache stale. [Timeline.SetEase] performs the mutation and
// the rebuild as one step and is the recommended path.
//
// # Thread Safety
//
// A [Timeline] and its segments are confined to a single goroutine.
// Distinct Timeline instances share no state and may be used
// concurrently with each other.
package easetimeline
