package diagnostics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/gomcmc/chain"
)

// AcceptanceRate returns the fraction of the B·T chain steps that were not
// rejections. A step j ≥ 1 is a rejection when its state equals the state at
// j-1 in every component under exact ==. The first step of a chain is never
// a rejection, so a constant chain of T states gives 1/T.
func AcceptanceRate(z *chain.Ensemble) float64 {
	b, t, _ := z.Shape()
	total := b * t
	return float64(total-rejections(z)) / float64(total)
}

// TransitionAcceptanceRate returns the fraction of the B·(T-1) transitions
// that changed state: 0 for constant chains, 1 when every consecutive pair
// differs. It is NaN for single-step chains.
func TransitionAcceptanceRate(z *chain.Ensemble) float64 {
	b, t, _ := z.Shape()
	total := float64(b * (t - 1))
	return (total - float64(rejections(z))) / total
}

func rejections(z *chain.Ensemble) int {
	b, t, _ := z.Shape()
	n := 0
	for i := 0; i < b; i++ {
		for j := 1; j < t; j++ {
			if floats.Equal(z.State(i, j-1), z.State(i, j)) {
				n++
			}
		}
	}
	return n
}
