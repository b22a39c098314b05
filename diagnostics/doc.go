// Package diagnostics provides convergence and mixing diagnostics for MCMC
// chains.
//
// Every estimator is a pure function of a chain.Ensemble (or, for
// Gelman-Rubin, an m×n gonum matrix). Inputs are never modified and outputs
// are freshly allocated, so estimators may run concurrently on shared data.
//
// # Autocorrelation and Effective Sample Size
//
// The autocorrelation estimators need the true mean and variance of the
// target. They are trusted as given:
//
//	rho, err := diagnostics.Autocorrelation(x, 1, mu, variance)
//	ess, err := diagnostics.EffectiveSampleSize(x, mu, variance, logrus.StandardLogger())
//
// The ESS sum over lags stops at the first lag where no dimension's
// autocorrelation exceeds 0.05. To truncate each dimension separately:
//
//	cfg := diagnostics.DefaultConfig()
//	cfg.PerDimensionCutoff = true
//	ess, err := diagnostics.EffectiveSampleSizeWithConfig(x, mu, variance, logger, cfg)
//
// # Batch Means
//
// The batch-means estimator needs no known moments:
//
//	ratio, err := diagnostics.BatchEffectiveSampleSize(x, nil)
//
// # Acceptance Rate
//
//	rate := diagnostics.AcceptanceRate(z)
//	transitions := diagnostics.TransitionAcceptanceRate(z)
//
// # Gelman-Rubin
//
//	r, err := diagnostics.GelmanRubin(x.Runs(0), logger)
//	rs, err := diagnostics.GelmanRubinEnsemble(x, logger, nil)
//
// # Degenerate Input
//
// Zero variances and chains too short for batch means produce Inf or NaN
// rather than errors. Set Config.Strict to get ErrDegenerateInput or
// ErrInsufficientLength instead. Shape violations always fail with
// ErrShapeMismatch.
//
// # Logging
//
// ESS, batch means and Gelman-Rubin write one summary line to a Logger, such
// as a *logrus.Logger. Pass nil to disable it.
package diagnostics
