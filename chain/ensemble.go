// Package chain provides the dense data model shared by the MCMC diagnostics.
package chain

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrShapeMismatch is returned when an array's rank or axis lengths do not
// match what an operation requires. Nothing in this module broadcasts.
var ErrShapeMismatch = errors.New("shape mismatch")

// Ensemble is a set of B chains of T steps over a D-dimensional state space,
// stored as one row-major buffer indexed [chain, time, dimension].
// The dimension axis is the fastest, so every chain is a contiguous T×D block.
type Ensemble struct {
	chains int
	steps  int
	dims   int
	data   []float64
}

// New wraps data as a [chains, steps, dims] ensemble without copying it.
func New(chains, steps, dims int, data []float64) (*Ensemble, error) {
	if chains <= 0 || steps <= 0 || dims <= 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "non-positive axis in [%d %d %d]", chains, steps, dims)
	}
	if len(data) != chains*steps*dims {
		return nil, errors.Wrapf(ErrShapeMismatch, "buffer of length %d cannot hold [%d %d %d]",
			len(data), chains, steps, dims)
	}
	return &Ensemble{chains: chains, steps: steps, dims: dims, data: data}, nil
}

// NewStates wraps a [chains, steps, ...] buffer whose per-step states may have
// any shape. The trailing axes are flattened into the dimension axis; an empty
// stateShape means scalar states.
func NewStates(chains, steps int, data []float64, stateShape ...int) (*Ensemble, error) {
	dims := 1
	for _, n := range stateShape {
		if n <= 0 {
			return nil, errors.Wrapf(ErrShapeMismatch, "non-positive state axis in %v", stateShape)
		}
		dims *= n
	}
	return New(chains, steps, dims, data)
}

// FromNested copies x, indexed [chain][time][dimension], into an ensemble.
// Ragged input is rejected.
func FromNested(x [][][]float64) (*Ensemble, error) {
	if len(x) == 0 || len(x[0]) == 0 || len(x[0][0]) == 0 {
		return nil, errors.Wrap(ErrShapeMismatch, "empty nested ensemble")
	}
	b, t, d := len(x), len(x[0]), len(x[0][0])
	data := make([]float64, 0, b*t*d)
	for i, c := range x {
		if len(c) != t {
			return nil, errors.Wrapf(ErrShapeMismatch, "chain %d has %d steps, want %d", i, len(c), t)
		}
		for j, s := range c {
			if len(s) != d {
				return nil, errors.Wrapf(ErrShapeMismatch, "chain %d step %d has %d dims, want %d", i, j, len(s), d)
			}
			data = append(data, s...)
		}
	}
	return New(b, t, d, data)
}

// FromRuns copies an m×n matrix of scalar chains (one chain per row) into an
// [m, n, 1] ensemble.
func FromRuns(x mat.Matrix) *Ensemble {
	m, n := x.Dims()
	data := make([]float64, 0, m*n)
	for i := 0; i < m; i++ {
		data = append(data, mat.Row(nil, i, x)...)
	}
	return &Ensemble{chains: m, steps: n, dims: 1, data: data}
}

// Chains returns the number of chains B.
func (e *Ensemble) Chains() int { return e.chains }

// Steps returns the chain length T.
func (e *Ensemble) Steps() int { return e.steps }

// Dims returns the state dimension D.
func (e *Ensemble) Dims() int { return e.dims }

// Shape returns (B, T, D).
func (e *Ensemble) Shape() (chains, steps, dims int) {
	return e.chains, e.steps, e.dims
}

// At returns x[i, t, d].
func (e *Ensemble) At(i, t, d int) float64 {
	return e.data[(i*e.steps+t)*e.dims+d]
}

// State returns the state vector of chain i at step t. The slice shares the
// ensemble's buffer and must not be modified.
func (e *Ensemble) State(i, t int) []float64 {
	off := (i*e.steps + t) * e.dims
	return e.data[off : off+e.dims : off+e.dims]
}

// Chain returns chain i as a T×D matrix view over the ensemble's buffer.
func (e *Ensemble) Chain(i int) *mat.Dense {
	off := i * e.steps * e.dims
	return mat.NewDense(e.steps, e.dims, e.data[off:off+e.steps*e.dims])
}

// Series returns a copy of the trace of dimension d in chain i.
func (e *Ensemble) Series(i, d int) []float64 {
	return mat.Col(nil, d, e.Chain(i))
}

// Runs returns dimension d as an m×n matrix, one chain per row.
func (e *Ensemble) Runs(d int) *mat.Dense {
	runs := mat.NewDense(e.chains, e.steps, nil)
	for i := 0; i < e.chains; i++ {
		runs.SetRow(i, e.Series(i, d))
	}
	return runs
}

// Pooled returns every value of dimension d across all chains and steps.
func (e *Ensemble) Pooled(d int) []float64 {
	out := make([]float64, 0, e.chains*e.steps)
	for i := 0; i < e.chains; i++ {
		for t := 0; t < e.steps; t++ {
			out = append(out, e.At(i, t, d))
		}
	}
	return out
}

// Moments returns the per-dimension mean and population variance over the
// pooled chain×time values.
func (e *Ensemble) Moments() (mu, variance []float64) {
	mu = make([]float64, e.dims)
	variance = make([]float64, e.dims)
	for d := 0; d < e.dims; d++ {
		mu[d], variance[d] = stat.PopMeanVariance(e.Pooled(d), nil)
	}
	return mu, variance
}

// Window returns a copy of steps [start, end) of every chain, for discarding
// burn-in. The bounds are clamped to the chain length.
func (e *Ensemble) Window(start, end int) (*Ensemble, error) {
	if start < 0 {
		start = 0
	}
	if end > e.steps {
		end = e.steps
	}
	if start >= end {
		return nil, errors.Wrapf(ErrShapeMismatch, "empty window [%d, %d) of %d steps", start, end, e.steps)
	}

	steps := end - start
	data := make([]float64, 0, e.chains*steps*e.dims)
	for i := 0; i < e.chains; i++ {
		from := (i*e.steps + start) * e.dims
		data = append(data, e.data[from:from+steps*e.dims]...)
	}
	return &Ensemble{chains: e.chains, steps: steps, dims: e.dims, data: data}, nil
}

// Thin keeps every k-th step of every chain, starting with the first.
func (e *Ensemble) Thin(k int) (*Ensemble, error) {
	if k <= 0 {
		return nil, errors.Wrapf(ErrShapeMismatch, "thinning interval %d", k)
	}

	steps := (e.steps + k - 1) / k
	data := make([]float64, 0, e.chains*steps*e.dims)
	for i := 0; i < e.chains; i++ {
		for t := 0; t < e.steps; t += k {
			data = append(data, e.State(i, t)...)
		}
	}
	return &Ensemble{chains: e.chains, steps: steps, dims: e.dims, data: data}, nil
}
