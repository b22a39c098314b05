package diagnostics

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gomcmc/chain"
)

// ar1 draws b stationary AR(1) chains of n steps in d independent dimensions
// with unit marginal variance and zero mean. phi = 0 gives white noise.
func ar1(t *testing.T, seed uint64, b, n, d int, phi float64) *chain.Ensemble {
	t.Helper()

	rng := rand.New(rand.NewPCG(seed, seed+1))
	scale := math.Sqrt(1 - phi*phi)
	data := make([]float64, b*n*d)
	for i := 0; i < b; i++ {
		for j := 0; j < d; j++ {
			prev := rng.NormFloat64()
			for s := 0; s < n; s++ {
				if s > 0 {
					prev = phi*prev + scale*rng.NormFloat64()
				}
				data[(i*n+s)*d+j] = prev
			}
		}
	}

	x, err := chain.New(b, n, d, data)
	require.NoError(t, err)
	return x
}

func unitMoments(d int) (mu, variance []float64) {
	mu = make([]float64, d)
	variance = make([]float64, d)
	for j := range variance {
		variance[j] = 1
	}
	return mu, variance
}

func nested(t *testing.T, x [][][]float64) *chain.Ensemble {
	t.Helper()
	e, err := chain.FromNested(x)
	require.NoError(t, err)
	return e
}

// scalars builds a [b, n, 1] ensemble from one row per chain.
func scalars(t *testing.T, rows ...[]float64) *chain.Ensemble {
	t.Helper()
	x := make([][][]float64, len(rows))
	for i, r := range rows {
		x[i] = make([][]float64, len(r))
		for s, v := range r {
			x[i][s] = []float64{v}
		}
	}
	return nested(t, x)
}
