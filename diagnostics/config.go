package diagnostics

// DefaultThreshold is the autocorrelation below which the ESS sum is truncated.
const DefaultThreshold = 0.05

// Config holds options shared by the estimators.
type Config struct {
	Threshold float64 // Autocorrelation cutoff for ESS truncation (default: 0.05)

	// PerDimensionCutoff stops each dimension at its own first lag whose
	// autocorrelation is at or below Threshold. When false, the sum over lags
	// stops only once no dimension is above Threshold, and a dimension that
	// dips below it at one lag may still contribute at later lags.
	PerDimensionCutoff bool

	// Strict turns degenerate input (zero variances, fewer than two batches)
	// into errors instead of Inf/NaN results.
	Strict bool
}

// DefaultConfig returns the default estimator configuration.
func DefaultConfig() *Config {
	return &Config{
		Threshold: DefaultThreshold,
	}
}
