// Package chain provides the data model for MCMC chain diagnostics.
//
// An Ensemble holds B chains of T steps over a D-dimensional state space in a
// single dense, row-major buffer indexed [chain, time, dimension]. The
// diagnostics package reads ensembles and never modifies them.
//
// # Creating an Ensemble
//
// Wrap an existing buffer without copying:
//
//	// 4 chains, 1000 steps, 2 dimensions
//	x, err := chain.New(4, 1000, 2, data)
//
// Copy nested slices:
//
//	x, err := chain.FromNested([][][]float64{
//	    {{0.1, 1.2}, {0.3, 1.1}},
//	    {{-0.2, 0.9}, {0.0, 1.0}},
//	})
//
// States with more than one trailing axis are flattened:
//
//	// 2 chains, 500 steps, 3×3 matrix states
//	z, err := chain.NewStates(2, 500, data, 3, 3)
//
// # Views
//
//	chain0 := x.Chain(0)   // T×D *mat.Dense sharing the buffer
//	trace := x.Series(0, 1) // copy of chain 0, dimension 1
//	runs := x.Runs(1)       // m×n matrix for Gelman-Rubin
//
// # Preprocessing
//
//	kept, err := x.Window(200, x.Steps()) // drop 200 burn-in steps
//	thinned, err := kept.Thin(5)
//
// Any shape violation returns an error wrapping ErrShapeMismatch.
package chain
