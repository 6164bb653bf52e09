package mc

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/lvreuse/boostback/internal/uncertainty"
)

// ScalarModel evaluates one scenario into a single response.
type ScalarModel func(scenario uncertainty.Scenario) (float64, error)

// SobolResult holds variance-based sensitivity indices per uncertainty.
type SobolResult struct {
	Names      []string
	FirstOrder []float64
	Total      []float64
	Samples    int // base samples whose k+2 evaluations all succeeded
}

// Sobol estimates first-order and total-effect sensitivity indices of the
// model response using the Saltelli two-matrix scheme with Jansen
// estimators, n base samples and n*(k+2) model evaluations for k
// uncertainties. A base sample is dropped entirely when any one of its
// evaluations fails, keeping the estimator matrices aligned.
func Sobol(model ScalarModel, set *uncertainty.Set, n int, rng *rand.Rand) (*SobolResult, error) {
	k := set.Len()
	if k == 0 {
		return nil, fmt.Errorf("mc: sobol needs at least one uncertainty")
	}
	if n < 2 {
		return nil, fmt.Errorf("mc: sobol needs at least two base samples, got %d", n)
	}

	names := set.Names()
	draw := func() []uncertainty.Scenario {
		out := make([]uncertainty.Scenario, n)
		for j := range out {
			sc := make(uncertainty.Scenario, k)
			for i := 0; i < k; i++ {
				u := set.At(i)
				sc[u.Name()] = u.Quantile(rng.Float64())
			}
			out[j] = sc
		}
		return out
	}
	matA, matB := draw(), draw()

	fA := make([]float64, n)
	fB := make([]float64, n)
	fAB := make([][]float64, k)
	mask := make([]bool, n)
	for j := range mask {
		mask[j] = true
	}
	eval := func(sc uncertainty.Scenario, j int, dst []float64) {
		if !mask[j] {
			return
		}
		v, err := model(sc)
		if err != nil {
			mask[j] = false
			return
		}
		dst[j] = v
	}

	for j := 0; j < n; j++ {
		eval(matA[j], j, fA)
		eval(matB[j], j, fB)
	}
	for i := 0; i < k; i++ {
		fAB[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if !mask[j] {
				continue
			}
			// Matrix A with column i taken from B.
			sc := make(uncertainty.Scenario, k)
			for key, v := range matA[j] {
				sc[key] = v
			}
			sc[names[i]] = matB[j][names[i]]
			eval(sc, j, fAB[i])
		}
	}

	kept := 0
	for _, ok := range mask {
		if ok {
			kept++
		}
	}
	if kept < 2 {
		return nil, fmt.Errorf("mc: sobol: only %d of %d base samples evaluated cleanly", kept, n)
	}

	pooled := make([]float64, 0, 2*kept)
	for j := 0; j < n; j++ {
		if mask[j] {
			pooled = append(pooled, fA[j], fB[j])
		}
	}
	varY := stat.Variance(pooled, nil)
	if varY == 0 {
		return nil, fmt.Errorf("mc: sobol: response variance is zero")
	}

	res := &SobolResult{
		Names:      names,
		FirstOrder: make([]float64, k),
		Total:      make([]float64, k),
		Samples:    kept,
	}
	for i := 0; i < k; i++ {
		var sumFirst, sumTotal float64
		for j := 0; j < n; j++ {
			if !mask[j] {
				continue
			}
			dB := fB[j] - fAB[i][j]
			dA := fA[j] - fAB[i][j]
			sumFirst += dB * dB
			sumTotal += dA * dA
		}
		res.FirstOrder[i] = (varY - sumFirst/(2*float64(kept))) / varY
		res.Total[i] = sumTotal / (2 * float64(kept)) / varY
	}
	return res, nil
}
