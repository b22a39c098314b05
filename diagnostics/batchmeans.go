package diagnostics

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sartorproj/gomcmc/chain"
)

// BatchEffectiveSampleSize estimates the effective sample size by the method
// of batch means, using the default configuration. It needs no known mean or
// variance: it compares the variance of the pooled chains to the variance of
// means of contiguous batches.
func BatchEffectiveSampleSize(x *chain.Ensemble, logger Logger) ([]float64, error) {
	return BatchEffectiveSampleSizeWithConfig(x, logger, nil)
}

// BatchEffectiveSampleSizeWithConfig splits the time axis into
// floor(cbrt(T)) batches of floor(cbrt(T))² steps, dropping any remainder.
// Each batch mean is taken over its steps in all chains, and the result per
// dimension is
//
//	Var(x) / (Var(batch means) · batch size)
//
// with population variances. The value is a ratio: independent chains give
// roughly the number of chains, strongly correlated chains much less.
//
// T must be at least 8 for two batches. Shorter chains yield Inf or NaN, or
// ErrInsufficientLength when cfg.Strict is set.
func BatchEffectiveSampleSizeWithConfig(x *chain.Ensemble, logger Logger, cfg *Config) ([]float64, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if x == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "nil ensemble")
	}

	b, t, d := x.Shape()
	batches, size, err := batchLayout(t, cfg)
	if err != nil {
		return nil, err
	}

	ess := make([]float64, d)
	means := make([]float64, batches)
	for j := 0; j < d; j++ {
		pooled := x.Pooled(j)
		for k := range means {
			sum := 0.0
			for i := 0; i < b; i++ {
				from := i*t + k*size
				sum += floats.Sum(pooled[from : from+size])
			}
			means[k] = sum / float64(b*size)
		}

		_, batchVariance := stat.PopMeanVariance(means, nil)
		_, chainVariance := stat.PopMeanVariance(pooled, nil)
		if cfg.Strict && batchVariance == 0 {
			return nil, errors.Wrapf(ErrDegenerateInput, "zero batch variance in dimension %d", j)
		}
		ess[j] = chainVariance / (batchVariance * float64(size))
	}

	logf(logger, "ESS: min [%f] max [%f] / [%d]", floats.Min(ess), floats.Max(ess), 1)
	return ess, nil
}

// BatchEffectiveSampleSizePerChain applies the batch-means estimator to every
// chain separately and returns the ratios indexed [chain][dimension].
// Independent samples give values near 1.
func BatchEffectiveSampleSizePerChain(x *chain.Ensemble, cfg *Config) ([][]float64, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if x == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "nil ensemble")
	}

	b, t, d := x.Shape()
	batches, size, err := batchLayout(t, cfg)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, b)
	means := make([]float64, batches)
	for i := 0; i < b; i++ {
		out[i] = make([]float64, d)
		for j := 0; j < d; j++ {
			series := x.Series(i, j)
			for k := range means {
				means[k] = stat.Mean(series[k*size:(k+1)*size], nil)
			}

			_, batchVariance := stat.PopMeanVariance(means, nil)
			_, chainVariance := stat.PopMeanVariance(series, nil)
			if cfg.Strict && batchVariance == 0 {
				return nil, errors.Wrapf(ErrDegenerateInput, "zero batch variance in chain %d dimension %d", i, j)
			}
			out[i][j] = chainVariance / (batchVariance * float64(size))
		}
	}
	return out, nil
}

// batchLayout returns the number of batches and the batch size for chains of
// t steps. math.Cbrt is exact on perfect cubes, so T = 8 gives two batches.
func batchLayout(t int, cfg *Config) (batches, size int, err error) {
	batches = int(math.Floor(math.Cbrt(float64(t))))
	size = batches * batches
	if cfg.Strict && batches < 2 {
		return 0, 0, errors.Wrapf(ErrInsufficientLength, "%d steps give %d batch", t, batches)
	}
	return batches, size, nil
}
