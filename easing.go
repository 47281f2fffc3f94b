package easetimeline

import (
	"math"
)

// Kind identifies an easing curve shape.
//
// The zero value is [KindNone], which evaluates to 0 everywhere. All other
// kinds map normalized progress x ∈ [0, 1] to an eased ratio with
// Ease(kind, 0) = 0 and Ease(kind, 1) = 1. Back and Elastic curves
// overshoot, so intermediate outputs are not confined to [0, 1].
type Kind int

const (
	// KindNone is the null curve. It always evaluates to 0, which makes a
	// segment hold its ValueStart regardless of progress.
	KindNone Kind = iota

	// KindLinear is the identity curve (constant-rate interpolation).
	KindLinear

	KindInSine
	KindOutSine
	KindInOutSine

	KindInQuad
	KindOutQuad
	KindInOutQuad

	KindInCubic
	KindOutCubic
	KindInOutCubic

	KindInQuart
	KindOutQuart
	KindInOutQuart

	KindInQuint
	KindOutQuint
	KindInOutQuint

	KindInExpo
	KindOutExpo
	KindInOutExpo

	KindInCirc
	KindOutCirc
	KindInOutCirc

	KindInBack
	KindOutBack
	KindInOutBack

	KindInElastic
	KindOutElastic
	KindInOutElastic

	KindInBounce
	KindOutBounce
	KindInOutBounce

	numKinds
)

// Easing formula constants. These are the canonical values used across
// animation frameworks (easings.net); changing them changes curve shapes.
const (
	backOvershoot      = 1.70158
	backOvershootInOut = backOvershoot * 1.525
	backScale          = backOvershoot + 1

	elasticPeriod      = 2 * math.Pi / 3
	elasticPeriodInOut = 2 * math.Pi / 4.5

	bounceScale = 7.5625
	bounceDenom = 2.75
)

var kindNames = [numKinds]string{
	KindNone:         "none",
	KindLinear:       "linear",
	KindInSine:       "in-sine",
	KindOutSine:      "out-sine",
	KindInOutSine:    "in-out-sine",
	KindInQuad:       "in-quad",
	KindOutQuad:      "out-quad",
	KindInOutQuad:    "in-out-quad",
	KindInCubic:      "in-cubic",
	KindOutCubic:     "out-cubic",
	KindInOutCubic:   "in-out-cubic",
	KindInQuart:      "in-quart",
	KindOutQuart:     "out-quart",
	KindInOutQuart:   "in-out-quart",
	KindInQuint:      "in-quint",
	KindOutQuint:     "out-quint",
	KindInOutQuint:   "in-out-quint",
	KindInExpo:       "in-expo",
	KindOutExpo:      "out-expo",
	KindInOutExpo:    "in-out-expo",
	KindInCirc:       "in-circ",
	KindOutCirc:      "out-circ",
	KindInOutCirc:    "in-out-circ",
	KindInBack:       "in-back",
	KindOutBack:      "out-back",
	KindInOutBack:    "in-out-back",
	KindInElastic:    "in-elastic",
	KindOutElastic:   "out-elastic",
	KindInOutElastic: "in-out-elastic",
	KindInBounce:     "in-bounce",
	KindOutBounce:    "out-bounce",
	KindInOutBounce:  "in-out-bounce",
}

// String returns the canonical name of the kind, or "none" for
// unrecognized values.
func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return kindNames[KindNone]
	}
	return kindNames[k]
}

// Kinds returns all defined easing kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, numKinds)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind resolves a canonical kind name (as produced by [Kind.String])
// back to its Kind. The second result is false for unknown names.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindNone, false
}

// Ease maps normalized progress x through the named curve.
//
// Ease is a pure total function: it never fails, and an unrecognized kind
// behaves as KindNone. Input is not clamped; x outside [0, 1] extrapolates
// through the same formula, so callers that need confinement must clamp
// before calling.
func Ease(kind Kind, x float64) float64 {
	switch kind {
	case KindLinear:
		return x

	case KindInSine:
		return 1 - math.Cos(x*math.Pi/2)
	case KindOutSine:
		return math.Sin(x * math.Pi / 2)
	case KindInOutSine:
		return -(math.Cos(math.Pi*x) - 1) / 2

	case KindInQuad:
		return x * x
	case KindOutQuad:
		return 1 - (1-x)*(1-x)
	case KindInOutQuad:
		if x < 0.5 {
			return 2 * x * x
		}
		return 1 - math.Pow(-2*x+2, 2)/2

	case KindInCubic:
		return x * x * x
	case KindOutCubic:
		return 1 - math.Pow(1-x, 3)
	case KindInOutCubic:
		if x < 0.5 {
			return 4 * x * x * x
		}
		return 1 - math.Pow(-2*x+2, 3)/2

	case KindInQuart:
		return x * x * x * x
	case KindOutQuart:
		return 1 - math.Pow(1-x, 4)
	case KindInOutQuart:
		if x < 0.5 {
			return 8 * x * x * x * x
		}
		return 1 - math.Pow(-2*x+2, 4)/2

	case KindInQuint:
		return x * x * x * x * x
	case KindOutQuint:
		return 1 - math.Pow(1-x, 5)
	case KindInOutQuint:
		if x < 0.5 {
			return 16 * x * x * x * x * x
		}
		return 1 - math.Pow(-2*x+2, 5)/2

	case KindInExpo:
		if x == 0 {
			return 0
		}
		return math.Pow(2, 10*x-10)
	case KindOutExpo:
		if x == 1 {
			return 1
		}
		return 1 - math.Pow(2, -10*x)
	case KindInOutExpo:
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return math.Pow(2, 20*x-10) / 2
		default:
			return (2 - math.Pow(2, -20*x+10)) / 2
		}

	case KindInCirc:
		return 1 - math.Sqrt(1-x*x)
	case KindOutCirc:
		return math.Sqrt(1 - (x-1)*(x-1))
	case KindInOutCirc:
		if x < 0.5 {
			return (1 - math.Sqrt(1-4*x*x)) / 2
		}
		return (math.Sqrt(1-math.Pow(-2*x+2, 2)) + 1) / 2

	case KindInBack:
		return backScale*x*x*x - backOvershoot*x*x
	case KindOutBack:
		return 1 + backScale*math.Pow(x-1, 3) + backOvershoot*math.Pow(x-1, 2)
	case KindInOutBack:
		if x < 0.5 {
			return math.Pow(2*x, 2) * ((backOvershootInOut+1)*2*x - backOvershootInOut) / 2
		}
		return (math.Pow(2*x-2, 2)*((backOvershootInOut+1)*(2*x-2)+backOvershootInOut) + 2) / 2

	case KindInElastic:
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		default:
			return -math.Pow(2, 10*x-10) * math.Sin((10*x-10.75)*elasticPeriod)
		}
	case KindOutElastic:
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		default:
			return math.Pow(2, -10*x)*math.Sin((10*x-0.75)*elasticPeriod) + 1
		}
	case KindInOutElastic:
		switch {
		case x == 0:
			return 0
		case x == 1:
			return 1
		case x < 0.5:
			return -math.Pow(2, 20*x-10) * math.Sin((20*x-11.125)*elasticPeriodInOut) / 2
		default:
			return math.Pow(2, -20*x+10)*math.Sin((20*x-11.125)*elasticPeriodInOut)/2 + 1
		}

	case KindInBounce:
		return 1 - bounceOut(1-x)
	case KindOutBounce:
		return bounceOut(x)
	case KindInOutBounce:
		if x < 0.5 {
			return (1 - bounceOut(1-2*x)) / 2
		}
		return (1 + bounceOut(2*x-1)) / 2

	default:
		// KindNone and anything out of range.
		return 0
	}
}

// bounceOut is the piecewise parabolic bounce curve all three bounce
// variants are built from.
func bounceOut(x float64) float64 {
	switch {
	case x < 1/bounceDenom:
		return bounceScale * x * x
	case x < 2/bounceDenom:
		x -= 1.5 / bounceDenom
		return bounceScale*x*x + 0.75
	case x < 2.5/bounceDenom:
		x -= 2.25 / bounceDenom
		return bounceScale*x*x + 0.9375
	default:
		x -= 2.625 / bounceDenom
		return bounceScale*x*x + 0.984375
	}
}
