// Package gomcmc provides convergence and mixing diagnostics for Markov chain
// Monte Carlo samplers.
//
// GoMCMC works on chains that have already been generated. It does not run a
// sampler, read chain files or store results; it turns a dense array of draws
// into the statistics used to judge a sampler.
//
// # Features
//
//   - Lag-s autocorrelation against a known mean and variance
//   - Effective sample size from the integrated autocorrelation time
//   - Effective sample size by the method of batch means
//   - Acceptance rate from repeated states
//   - Gelman-Rubin potential scale reduction factor (R-hat)
//
// # Quick Start
//
//	x, _ := chain.New(4, 1000, 2, draws) // [chain, time, dimension]
//
//	ess, _ := diagnostics.EffectiveSampleSize(x, mu, variance, logrus.StandardLogger())
//	rate := diagnostics.AcceptanceRate(x)
//	rhat, _ := diagnostics.GelmanRubinEnsemble(x, logrus.StandardLogger(), nil)
//
// Or everything at once:
//
//	summary, _ := diagnostics.Summarize(ctx, x, mu, variance, logger, nil)
//
// # Packages
//
//   - chain: the dense [chain, time, dimension] ensemble and its views
//   - diagnostics: the estimators, their configuration and errors
//
// # References
//
//   - Gelman, A., & Rubin, D. B. (1992). Inference from Iterative Simulation Using Multiple Sequences
//   - Flegal, J. M., Haran, M., & Jones, G. L. (2008). Markov Chain Monte Carlo: Can We Trust the Third Significant Figure?
package gomcmc
