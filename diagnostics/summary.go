package diagnostics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/sartorproj/gomcmc/chain"
)

// Summary holds every diagnostic for one ensemble.
type Summary struct {
	ESS                      []float64 // Autocorrelation-based ESS per dimension
	BatchESS                 []float64 // Batch-means ratio per dimension (nil when T < 8)
	AcceptanceRate           float64
	TransitionAcceptanceRate float64
	RHat                     []float64 // Per-dimension R-hat (nil for a single chain)
}

// Summarize computes all diagnostics of x concurrently. mu and variance are
// passed to the autocorrelation-based ESS unchanged. Batch means are skipped
// for chains shorter than 8 steps unless cfg.Strict is set, in which case the
// call fails with ErrInsufficientLength. R-hat needs at least two chains.
func Summarize(ctx context.Context, x *chain.Ensemble, mu, variance []float64, logger Logger, cfg *Config) (*Summary, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := checkMoments(x, mu, variance); err != nil {
		return nil, err
	}

	var s Summary
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		s.ESS, err = effectiveSampleSize(ctx, x, mu, variance, logger, cfg)
		return err
	})

	if x.Steps() >= 8 || cfg.Strict {
		eg.Go(func() error {
			var err error
			s.BatchESS, err = BatchEffectiveSampleSizeWithConfig(x, logger, cfg)
			return err
		})
	}

	eg.Go(func() error {
		s.AcceptanceRate = AcceptanceRate(x)
		s.TransitionAcceptanceRate = TransitionAcceptanceRate(x)
		return nil
	})

	if x.Chains() >= 2 {
		eg.Go(func() error {
			var err error
			s.RHat, err = GelmanRubinEnsemble(x, logger, cfg)
			return err
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &s, nil
}
