package diagnostics

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gomcmc/chain"
)

// GelmanRubin returns the potential scale reduction factor R-hat of m scalar
// chains of n samples, one chain per row of x. Values near 1 indicate that
// the chains agree.
func GelmanRubin(x mat.Matrix, logger Logger) (float64, error) {
	return GelmanRubinWithConfig(x, logger, nil, nil)
}

// GelmanRubinWithMean is GelmanRubin with the between-chain spread measured
// around a known mean mu instead of the grand mean of the chains.
func GelmanRubinWithMean(x mat.Matrix, logger Logger, mu float64) (float64, error) {
	return GelmanRubinWithConfig(x, logger, &mu, nil)
}

// GelmanRubinWithConfig computes
//
//	B = n/(m-1) · Σ (θᵢ - θ)²
//	W = 1/m · Σ σᵢ²
//	V = (n-1)/n · W + (m+1)/(m·n) · B
//	R = sqrt(V / W)
//
// where θᵢ and σᵢ² are the mean and population variance of chain i and θ is
// *mu, or the mean of the θᵢ when mu is nil. W = 0 yields Inf or NaN, or
// ErrDegenerateInput when cfg.Strict is set.
func GelmanRubinWithConfig(x mat.Matrix, logger Logger, mu *float64, cfg *Config) (float64, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r, err := rHat(x, mu, cfg.Strict)
	if err != nil {
		return 0, err
	}
	logf(logger, "R: max [%f] min [%f]", r, r)
	return r, nil
}

// GelmanRubinEnsemble returns R-hat for every dimension of x and logs the
// largest and smallest of them.
func GelmanRubinEnsemble(x *chain.Ensemble, logger Logger, cfg *Config) ([]float64, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if x == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "nil ensemble")
	}

	r := make([]float64, x.Dims())
	for d := range r {
		var err error
		if r[d], err = rHat(x.Runs(d), nil, cfg.Strict); err != nil {
			return nil, errors.Wrapf(err, "dimension %d", d)
		}
	}
	logf(logger, "R: max [%f] min [%f]", floats.Max(r), floats.Min(r))
	return r, nil
}

func rHat(x mat.Matrix, mu *float64, strict bool) (float64, error) {
	m, n := x.Dims()
	if m < 2 || n < 1 {
		return 0, errors.Wrapf(ErrShapeMismatch, "need at least 2 chains of 1 sample, got %d×%d", m, n)
	}

	theta := make([]float64, m)
	sigma := make([]float64, m)
	row := make([]float64, n)
	for i := 0; i < m; i++ {
		mat.Row(row, i, x)
		theta[i], sigma[i] = stat.PopMeanVariance(row, nil)
	}

	thetaM := stat.Mean(theta, nil)
	if mu != nil {
		thetaM = *mu
	}

	between := 0.0
	for _, th := range theta {
		between += (th - thetaM) * (th - thetaM)
	}
	between *= float64(n) / float64(m-1)

	within := stat.Mean(sigma, nil)
	if strict && within == 0 {
		return 0, errors.Wrap(ErrDegenerateInput, "zero within-chain variance")
	}

	v := float64(n-1)/float64(n)*within + float64(m+1)/float64(m*n)*between
	return math.Sqrt(v / within), nil
}
