package diagnostics

import (
	"context"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	x := ar1(t, 31, 4, 1000, 2, 0.5)
	mu, variance := unitMoments(2)
	logger, hook := logtest.NewNullLogger()

	s, err := Summarize(context.Background(), x, mu, variance, logger, nil)
	require.NoError(t, err)

	ess, err := EffectiveSampleSize(x, mu, variance, nil)
	require.NoError(t, err)
	assert.Equal(t, ess, s.ESS)

	batch, err := BatchEffectiveSampleSize(x, nil)
	require.NoError(t, err)
	assert.Equal(t, batch, s.BatchESS)

	r, err := GelmanRubinEnsemble(x, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, r, s.RHat)

	// Continuous draws never repeat.
	assert.Equal(t, 1.0, s.AcceptanceRate)
	assert.Equal(t, 1.0, s.TransitionAcceptanceRate)

	var essLines, rLines int
	for _, e := range hook.AllEntries() {
		switch {
		case strings.HasPrefix(e.Message, "ESS: "):
			essLines++
		case strings.HasPrefix(e.Message, "R: "):
			rLines++
		}
	}
	assert.Equal(t, 2, essLines)
	assert.Equal(t, 1, rLines)
}

func TestSummarizeSkipsInapplicable(t *testing.T) {
	x := scalars(t, []float64{1, 1, -1, -1})

	s, err := Summarize(context.Background(), x, []float64{0}, []float64{1}, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, s.BatchESS)
	assert.Nil(t, s.RHat)
	assert.InDelta(t, 4/1.5, s.ESS[0], 1e-12)
	assert.InDelta(t, 0.5, s.AcceptanceRate, 1e-12)
	assert.InDelta(t, 1.0/3, s.TransitionAcceptanceRate, 1e-12)
}

func TestSummarizeStrict(t *testing.T) {
	x := scalars(t, []float64{1, 1, -1, -1}, []float64{1, -1, 1, -1})
	cfg := DefaultConfig()
	cfg.Strict = true

	_, err := Summarize(context.Background(), x, []float64{0}, []float64{1}, nil, cfg)
	assert.ErrorIs(t, err, ErrInsufficientLength)
}

func TestSummarizeErrors(t *testing.T) {
	x := scalars(t, []float64{1, 2, 3})

	_, err := Summarize(context.Background(), x, nil, nil, nil, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Summarize(ctx, x, []float64{0}, []float64{1}, nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
