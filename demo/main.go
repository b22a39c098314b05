// Package main runs a random-walk Metropolis sampler on a standard normal
// target and reports the convergence diagnostics of its chains.
package main

import (
	"context"
	"math"
	"math/rand/v2"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/gomcmc/chain"
	"github.com/sartorproj/gomcmc/diagnostics"
)

type options struct {
	chains       int
	steps        int
	dims         int
	stepSize     float64
	spread       float64
	burnIn       int
	thin         int
	seed         uint64
	threshold    float64
	perDimension bool
	strict       bool
	verbose      bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "demo",
		Short:        "Sample a standard normal with Metropolis and print chain diagnostics",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.chains, "chains", 4, "Number of independent chains")
	flags.IntVar(&opts.steps, "steps", 2000, "Steps per chain, before burn-in")
	flags.IntVar(&opts.dims, "dims", 2, "Dimension of the target")
	flags.Float64Var(&opts.stepSize, "step-size", 1.0, "Standard deviation of the Gaussian proposal")
	flags.Float64Var(&opts.spread, "spread", 5.0, "Standard deviation of the overdispersed starting points")
	flags.IntVar(&opts.burnIn, "burn-in", 200, "Steps discarded from the start of every chain")
	flags.IntVar(&opts.thin, "thin", 1, "Keep every n-th step after burn-in")
	flags.Uint64Var(&opts.seed, "seed", 1, "Random seed")
	flags.Float64Var(&opts.threshold, "threshold", diagnostics.DefaultThreshold, "Autocorrelation cutoff for ESS")
	flags.BoolVar(&opts.perDimension, "per-dimension", false, "Truncate the ESS sum per dimension")
	flags.BoolVar(&opts.strict, "strict", false, "Fail on degenerate input instead of reporting Inf/NaN")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	return cmd
}

func run(ctx context.Context, opts options) error {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	rng := rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15))
	samples, accepted := metropolis(rng, opts)
	logger.WithFields(logrus.Fields{
		"chains":   opts.chains,
		"steps":    opts.steps,
		"dims":     opts.dims,
		"accepted": accepted,
	}).Debug("sampling finished")

	x, err := chain.New(opts.chains, opts.steps, opts.dims, samples)
	if err != nil {
		return err
	}
	if x, err = x.Window(opts.burnIn, x.Steps()); err != nil {
		return err
	}
	if x, err = x.Thin(opts.thin); err != nil {
		return err
	}

	cfg := diagnostics.DefaultConfig()
	cfg.Threshold = opts.threshold
	cfg.PerDimensionCutoff = opts.perDimension
	cfg.Strict = opts.strict

	// The target is N(0, I), so its moments are known exactly.
	mu := make([]float64, opts.dims)
	variance := make([]float64, opts.dims)
	for d := range variance {
		variance[d] = 1
	}

	summary, err := diagnostics.Summarize(ctx, x, mu, variance, logger, cfg)
	if err != nil {
		logger.WithError(err).Error("diagnostics failed")
		return err
	}

	empiricalMu, empiricalVar := x.Moments()
	logger.WithFields(logrus.Fields{
		"ess":                   summary.ESS,
		"batch_ess":             summary.BatchESS,
		"r_hat":                 summary.RHat,
		"acceptance_rate":       summary.AcceptanceRate,
		"transition_acceptance": summary.TransitionAcceptanceRate,
		"empirical_mean":        empiricalMu,
		"empirical_variance":    empiricalVar,
		"steps":                 x.Steps(),
	}).Info("summary")
	return nil
}

// metropolis returns a [chains, steps, dims] buffer of random-walk Metropolis
// draws from N(0, I), started at overdispersed points, and the number of
// accepted proposals.
func metropolis(rng *rand.Rand, opts options) ([]float64, int) {
	target := distuv.UnitNormal
	out := make([]float64, 0, opts.chains*opts.steps*opts.dims)
	accepted := 0

	cur := make([]float64, opts.dims)
	prop := make([]float64, opts.dims)
	for i := 0; i < opts.chains; i++ {
		for d := range cur {
			cur[d] = opts.spread * rng.NormFloat64()
		}
		for s := 0; s < opts.steps; s++ {
			logRatio := 0.0
			for d := range prop {
				prop[d] = cur[d] + opts.stepSize*rng.NormFloat64()
				logRatio += target.LogProb(prop[d]) - target.LogProb(cur[d])
			}
			if logRatio >= 0 || math.Log(rng.Float64()) < logRatio {
				copy(cur, prop)
				accepted++
			}
			out = append(out, cur...)
		}
	}
	return out, accepted
}
