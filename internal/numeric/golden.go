package numeric

import "math"

const invPhi = 0.6180339887498949

// MinimizeGolden locates the minimizer of f on [a, b] by golden-section
// search. The result is exact only when f is unimodal on the interval.
func MinimizeGolden(f func(float64) float64, a, b float64) float64 {
	x1 := b - invPhi*(b-a)
	x2 := a + invPhi*(b-a)
	f1, f2 := f(x1), f(x2)
	for i := 0; i < maxIterations; i++ {
		if math.Abs(b-a) <= absTol*(math.Abs(a)+math.Abs(b))+absTol {
			break
		}
		if f1 < f2 {
			b = x2
			x2, f2 = x1, f1
			x1 = b - invPhi*(b-a)
			f1 = f(x1)
		} else {
			a = x1
			x1, f1 = x2, f2
			x2 = a + invPhi*(b-a)
			f2 = f(x2)
		}
	}
	return (a + b) / 2
}
