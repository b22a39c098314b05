package diagnostics

import (
	"github.com/pkg/errors"

	"github.com/sartorproj/gomcmc/chain"
)

var (
	// ErrShapeMismatch reports inputs whose rank or axis lengths do not fit
	// the estimator, e.g. len(mu) != D.
	ErrShapeMismatch = chain.ErrShapeMismatch

	// ErrInvalidLag reports a lag outside [1, T).
	ErrInvalidLag = errors.New("invalid lag")

	// ErrDegenerateInput reports a zero variance in strict mode. Without
	// Config.Strict the same input yields Inf or NaN.
	ErrDegenerateInput = errors.New("degenerate input")

	// ErrInsufficientLength reports a chain too short for two batch-means
	// batches (T < 8) in strict mode.
	ErrInsufficientLength = errors.New("insufficient chain length")
)

func checkMoments(x *chain.Ensemble, mu, variance []float64) error {
	if x == nil {
		return errors.Wrap(ErrShapeMismatch, "nil ensemble")
	}
	if len(mu) != x.Dims() || len(variance) != x.Dims() {
		return errors.Wrapf(ErrShapeMismatch, "len(mu)=%d len(variance)=%d for %d dimensions",
			len(mu), len(variance), x.Dims())
	}
	return nil
}

func checkVariance(variance []float64) error {
	for d, v := range variance {
		if v == 0 {
			return errors.Wrapf(ErrDegenerateInput, "zero variance in dimension %d", d)
		}
	}
	return nil
}
