// Package numeric provides the scalar root bracketing, root finding, and
// bounded minimization routines used by the performance models.
package numeric

import (
	"errors"
	"fmt"
	"math"
)

const (
	maxIterations = 200
	machEps       = 2.220446049250313e-16
	absTol        = 1e-12
)

// ErrNoBracket reports that no sign change was found on the scanned interval.
var ErrNoBracket = errors.New("numeric: no sign change in interval")

// Brent finds a root of f on [a, b] using Brent's method. f(a) and f(b) must
// have opposite signs (or be zero).
func Brent(f func(float64) float64, a, b float64) (float64, error) {
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, fmt.Errorf("numeric: interval [%g, %g] does not bracket a root", a, b)
	}

	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < maxIterations; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, fa = b, fb
			b, fb = c, fc
			c, fc = a, fa
		}
		tol := 2*machEps*math.Abs(b) + 0.5*absTol
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			// Interpolation step: secant if only two points are distinct,
			// inverse quadratic otherwise.
			s := fb / fa
			var p, q float64
			if a == c {
				p = 2 * m * s
				q = 1 - s
			} else {
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = m
				e = d
			}
		} else {
			d = m
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, m)
		}
		fb = f(b)
	}
	return b, errors.New("numeric: root iteration did not converge")
}

// BracketRoot scans [a, b] in n equal panels and returns the first panel over
// which f changes sign. Scanning from a matters when f has several roots and
// the caller wants the smallest one.
func BracketRoot(f func(float64) float64, a, b float64, n int) (lo, hi float64, err error) {
	if n < 1 {
		n = 1
	}
	h := (b - a) / float64(n)
	lo = a
	flo := f(lo)
	for i := 1; i <= n; i++ {
		hi = a + float64(i)*h
		fhi := f(hi)
		if flo == 0 || (flo > 0) != (fhi > 0) {
			return lo, hi, nil
		}
		lo, flo = hi, fhi
	}
	return 0, 0, ErrNoBracket
}
