// Package solver implements the probabilistic GF(2) key-recovery
// algorithm for Shepherd-Bremner X-programs: sample generation (C2),
// triangular system construction (C3), back-substitution (C4), the
// mod-4 key checker (C5), the outer extractor (C6), and the biased
// IQP-like sample synthesizer (C7).
package solver

import (
	"xprogram/internal/bitmatrix"
	"xprogram/internal/rng"
	"xprogram/internal/xprog"
)

// Sample draws one "d+e" sample vector from program p for the fixed
// vector d, per spec.md §4.2: a fresh e is drawn, then every column
// orthogonal to d or to e is XORed into the result.
func Sample(p *xprog.Program, d *bitmatrix.Matrix, src *rng.Source) (*bitmatrix.Matrix, error) {
	n := p.N()
	e := src.Bits(n)
	out := bitmatrix.New(n, 1)
	for j := 0; j < p.Rows(); j++ {
		alpha, err := bitmatrix.DotCol(d, p.M, j)
		if err != nil {
			return nil, err
		}
		beta, err := bitmatrix.DotCol(e, p.M, j)
		if err != nil {
			return nil, err
		}
		// "alpha + beta < 2" is equivalent to "not (alpha AND beta)".
		if !(alpha && beta) {
			if err := bitmatrix.AddCol(out, p.M, j); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
