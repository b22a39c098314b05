package diagnostics

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/gomcmc/chain"
)

// EffectiveSampleSize estimates the per-dimension effective sample size from
// the integrated autocorrelation time, using the default configuration.
// mu and variance must be the true mean and variance of the target; they are
// not checked or re-estimated.
func EffectiveSampleSize(x *chain.Ensemble, mu, variance []float64, logger Logger) ([]float64, error) {
	return EffectiveSampleSizeWithConfig(x, mu, variance, logger, nil)
}

// EffectiveSampleSizeWithConfig estimates T / (1 + 2·Σ ρ(s)·(1 - s/T)) per
// dimension, where the sum runs over lags whose autocorrelation is above
// cfg.Threshold. The lag loop ends at the first lag where no dimension is
// above the threshold, or per dimension when cfg.PerDimensionCutoff is set.
func EffectiveSampleSizeWithConfig(x *chain.Ensemble, mu, variance []float64, logger Logger, cfg *Config) ([]float64, error) {
	return effectiveSampleSize(context.Background(), x, mu, variance, logger, cfg)
}

func effectiveSampleSize(ctx context.Context, x *chain.Ensemble, mu, variance []float64, logger Logger, cfg *Config) ([]float64, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := checkMoments(x, mu, variance); err != nil {
		return nil, err
	}
	if cfg.Strict {
		if err := checkVariance(variance); err != nil {
			return nil, err
		}
	}

	_, t, d := x.Shape()
	ys := center(x, mu)

	acc := make([]float64, d)
	floats.AddConst(1, acc)
	active := make([]bool, d)
	for j := range active {
		active[j] = true
	}

	for s := 1; s < t; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rho := laggedCorrelation(ys, x, s, variance)
		above := false
		for j, p := range rho {
			if !(p > cfg.Threshold) && cfg.PerDimensionCutoff {
				active[j] = false
			}
			if active[j] && p > cfg.Threshold {
				above = true
			}
		}
		if !above {
			break
		}

		weight := 1 - float64(s)/float64(t)
		for j, p := range rho {
			if active[j] && p > cfg.Threshold {
				acc[j] += 2 * p * weight
			}
		}
	}

	ess := make([]float64, d)
	for j := range ess {
		ess[j] = float64(t) / acc[j]
	}
	logf(logger, "ESS: max [%f] min [%f] / [%d]", floats.Max(ess), floats.Min(ess), t)
	return ess, nil
}
