package diagnostics

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gomcmc/chain"
)

// Autocorrelation returns the lag-s autocorrelation of every dimension,
// averaged over chains. Each chain is centered on mu and normalized by
// variance; both are trusted as given and must describe the target
// distribution, or the result is silently wrong.
//
// A zero entry in variance yields Inf or NaN in that dimension.
func Autocorrelation(x *chain.Ensemble, lag int, mu, variance []float64) ([]float64, error) {
	if err := checkMoments(x, mu, variance); err != nil {
		return nil, err
	}
	if lag < 1 || lag >= x.Steps() {
		return nil, errors.Wrapf(ErrInvalidLag, "lag %d for chains of %d steps", lag, x.Steps())
	}
	return laggedCorrelation(center(x, mu), x, lag, variance), nil
}

// center returns x[i] - mu for every chain and dimension, indexed [i*D+d].
func center(x *chain.Ensemble, mu []float64) [][]float64 {
	b, t, d := x.Shape()
	ys := make([][]float64, b*d)
	for i := 0; i < b; i++ {
		c := x.Chain(i)
		for j := 0; j < d; j++ {
			y := mat.Col(make([]float64, t), j, c)
			floats.AddConst(-mu[j], y)
			ys[i*d+j] = y
		}
	}
	return ys
}

// laggedCorrelation averages mean(y[:T-lag] * y[lag:]) / variance over chains.
func laggedCorrelation(ys [][]float64, x *chain.Ensemble, lag int, variance []float64) []float64 {
	b, t, d := x.Shape()
	pairs := float64(t - lag)

	act := make([]float64, d)
	for i := 0; i < b; i++ {
		for j := 0; j < d; j++ {
			y := ys[i*d+j]
			act[j] += floats.Dot(y[:t-lag], y[lag:]) / pairs / variance[j]
		}
	}
	floats.Scale(1/float64(b), act)
	return act
}
