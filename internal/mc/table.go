package mc

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Table holds Monte Carlo responses column-major. Failed samples keep their
// error and are excluded from every statistic.
type Table struct {
	names []string
	index map[string]int
	cols  [][]float64
	errs  []error
	ok    []bool
}

// NewTable allocates a table for n samples of the named responses.
func NewTable(names []string, n int) *Table {
	t := &Table{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
		cols:  make([][]float64, len(names)),
		errs:  make([]error, n),
		ok:    make([]bool, n),
	}
	for i, name := range names {
		t.index[name] = i
		t.cols[i] = make([]float64, n)
	}
	return t
}

// Len returns the number of samples, failed ones included.
func (t *Table) Len() int { return len(t.ok) }

// Names returns the response names in column order.
func (t *Table) Names() []string { return append([]string(nil), t.names...) }

// SetRow stores sample j's response vector.
func (t *Table) SetRow(j int, vals []float64) error {
	if len(vals) != len(t.cols) {
		return fmt.Errorf("mc: row has %d values, table has %d responses", len(vals), len(t.cols))
	}
	for i, v := range vals {
		t.cols[i][j] = v
	}
	t.ok[j] = true
	t.errs[j] = nil
	return nil
}

// SetError marks sample j as failed.
func (t *Table) SetError(j int, err error) {
	t.ok[j] = false
	t.errs[j] = err
}

// Err returns sample j's error, nil when it succeeded.
func (t *Table) Err(j int) error { return t.errs[j] }

// FailureCount returns the number of failed samples.
func (t *Table) FailureCount() int {
	n := 0
	for _, ok := range t.ok {
		if !ok {
			n++
		}
	}
	return n
}

// FirstError returns the error of the first failed sample, nil when every
// sample succeeded.
func (t *Table) FirstError() error {
	for j, ok := range t.ok {
		if !ok && t.errs[j] != nil {
			return t.errs[j]
		}
	}
	return nil
}

// Column returns the named response over the successful samples only.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, fmt.Errorf("mc: unknown response %q", name)
	}
	out := make([]float64, 0, len(t.ok))
	for j, sampled := range t.ok {
		if sampled {
			out = append(out, t.cols[i][j])
		}
	}
	return out, nil
}

// Quantile returns the p-quantile of the named response, linearly
// interpolated over the successful samples.
func (t *Table) Quantile(name string, p float64) (float64, error) {
	qs, err := t.Quantiles(name, p)
	if err != nil {
		return 0, err
	}
	return qs[0], nil
}

// Quantiles returns the given quantiles of the named response.
func (t *Table) Quantiles(name string, ps ...float64) ([]float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if len(col) == 0 {
		return nil, fmt.Errorf("mc: response %q has no successful samples", name)
	}
	sort.Float64s(col)
	out := make([]float64, len(ps))
	for i, p := range ps {
		out[i] = stat.Quantile(p, stat.LinInterp, col, nil)
	}
	return out, nil
}

// A QuantileRow is one response summarized at fixed probabilities, the
// shape report tables are built from.
type QuantileRow struct {
	Response  string
	Ps        []float64
	Quantiles []float64
}

// QuantileRow summarizes the named response at the given probabilities.
func (t *Table) QuantileRow(name string, ps []float64) (QuantileRow, error) {
	qs, err := t.Quantiles(name, ps...)
	if err != nil {
		return QuantileRow{}, err
	}
	return QuantileRow{
		Response:  name,
		Ps:        append([]float64(nil), ps...),
		Quantiles: qs,
	}, nil
}

// Mean returns the mean of the named response over the successful samples.
func (t *Table) Mean(name string) (float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	if len(col) == 0 {
		return 0, fmt.Errorf("mc: response %q has no successful samples", name)
	}
	return stat.Mean(col, nil), nil
}

// StdDev returns the sample standard deviation of the named response.
func (t *Table) StdDev(name string) (float64, error) {
	col, err := t.Column(name)
	if err != nil {
		return 0, err
	}
	if len(col) < 2 {
		return 0, fmt.Errorf("mc: response %q needs at least two successful samples", name)
	}
	return stat.StdDev(col, nil), nil
}
