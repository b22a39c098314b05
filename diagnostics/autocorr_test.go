package diagnostics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/sartorproj/gomcmc/chain"
)

func TestAutocorrelationExact(t *testing.T) {
	x := scalars(t, []float64{1, 2, 3}, []float64{3, 2, 1})
	mu, variance := []float64{2}, []float64{1}

	rho, err := Autocorrelation(x, 1, mu, variance)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, rho)

	// Maximum lag: exactly one pair (y[0], y[2]) per chain.
	rho, err = Autocorrelation(x, 2, mu, variance)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1}, rho)

	rho, err = Autocorrelation(x, 2, mu, []float64{4})
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.25}, rho)
}

func TestAutocorrelationPerDimension(t *testing.T) {
	x := nested(t, [][][]float64{{
		{1, 1}, {-1, 1}, {1, 1}, {-1, 1},
	}})

	rho, err := Autocorrelation(x, 1, []float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	require.Len(t, rho, 2)
	assert.InDelta(t, -1.0, rho[0], 1e-12)
	assert.InDelta(t, 1.0, rho[1], 1e-12)
}

func TestAutocorrelationWhiteNoise(t *testing.T) {
	x := ar1(t, 42, 4, 2000, 3, 0)
	mu, variance := unitMoments(3)

	for _, lag := range []int{1, 5, 50} {
		rho, err := Autocorrelation(x, lag, mu, variance)
		require.NoError(t, err)
		require.Len(t, rho, 3)
		for d, p := range rho {
			assert.Less(t, math.Abs(p), 0.06, "lag %d dimension %d", lag, d)
		}
	}
}

func TestAutocorrelationAR1(t *testing.T) {
	x := ar1(t, 7, 4, 5000, 1, 0.8)

	rho, err := Autocorrelation(x, 1, []float64{0}, []float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, rho[0], 0.08)

	rho, err = Autocorrelation(x, 2, []float64{0}, []float64{1})
	require.NoError(t, err)
	assert.InDelta(t, 0.64, rho[0], 0.1)
}

func TestAutocorrelationErrors(t *testing.T) {
	x := scalars(t, []float64{1, 2, 3})

	_, err := Autocorrelation(x, 0, []float64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidLag)

	_, err = Autocorrelation(x, 3, []float64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrInvalidLag)

	_, err = Autocorrelation(x, 1, []float64{0, 0}, []float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Autocorrelation(x, 1, []float64{0}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Autocorrelation(nil, 1, []float64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestAutocorrelationZeroVariance(t *testing.T) {
	x := scalars(t, []float64{1, 2, 3})

	rho, err := Autocorrelation(x, 1, []float64{0}, []float64{0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(rho[0], 1), "got %v", rho[0])
}

func TestAutocorrelationIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := rapid.IntRange(1, 3).Draw(t, "b")
		n := rapid.IntRange(2, 20).Draw(t, "n")
		d := rapid.IntRange(1, 3).Draw(t, "d")
		data := rapid.SliceOfN(rapid.Float64Range(-10, 10), b*n*d, b*n*d).Draw(t, "data")
		lag := rapid.IntRange(1, n-1).Draw(t, "lag")
		mu := rapid.SliceOfN(rapid.Float64Range(-1, 1), d, d).Draw(t, "mu")
		variance := rapid.SliceOfN(rapid.Float64Range(0.1, 5), d, d).Draw(t, "variance")

		x, err := chain.New(b, n, d, data)
		if err != nil {
			t.Fatal(err)
		}
		before := append([]float64(nil), data...)

		first, err := Autocorrelation(x, lag, mu, variance)
		if err != nil {
			t.Fatal(err)
		}
		second, _ := Autocorrelation(x, lag, mu, variance)
		if len(first) != d {
			t.Fatalf("got %d values for %d dimensions", len(first), d)
		}
		for j := range first {
			if math.Float64bits(first[j]) != math.Float64bits(second[j]) {
				t.Fatalf("dimension %d: %v then %v", j, first[j], second[j])
			}
		}
		for k := range data {
			if data[k] != before[k] {
				t.Fatalf("input modified at %d", k)
			}
		}
	})
}
