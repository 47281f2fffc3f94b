// Package quad provides the numeric quadrature primitives used for
// displacement integration.
package quad

// Func is a scalar integrand evaluated at a point in time.
type Func func(t float64) float64

// LeftRiemann approximates the definite integral of f over [a, b] with a
// fixed-step left-endpoint Riemann sum.
//
// The integrand is sampled at a, a+step, a+2·step, … while a full step
// still fits before b; each sample contributes f(t)·step. The final
// partial interval [t, b] contributes f(t)·(b-t), so the sum covers
// exactly [a, b] for any step size. Returns 0 when b ≤ a.
//
// The error is O(step) for smooth integrands. The result is reproducible
// for a given step, which range-query caches rely on: re-integrating the
// same interval with the same step yields the same value bit for bit.
func LeftRiemann(f Func, a, b, step float64) float64 {
	if b <= a {
		return 0
	}

	var sum float64

	t := a
	for t+step < b {
		sum += f(t) * step
		t += step
	}

	// Fractional tail correction for the last, possibly short interval.
	sum += f(t) * (b - t)

	return sum
}

// Trapezoid returns the exact integral over [a, b] of the linear function
// taking value fa at a and fb at b.
func Trapezoid(fa, fb, a, b float64) float64 {
	return (fa + fb) / 2 * (b - a)
}
