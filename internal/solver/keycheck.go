package solver

import (
	"xprogram/internal/bitmatrix"
	"xprogram/internal/rng"
	"xprogram/internal/xprog"
)

// keyCheckTrials is Ns in spec.md §4.5: 40 independent trials give a
// false-accept probability of about 2^-40.
const keyCheckTrials = 40

// CheckKey decides whether candidate is the true key of p by the
// weight-mod-4 statistical test (spec.md §4.5). It never surfaces an
// error: a bad candidate is a negative result, not a failure.
func CheckKey(p *xprog.Program, candidate *bitmatrix.Matrix, src *rng.Source) bool {
	n := p.N()
	for t := 0; t < keyCheckTrials; t++ {
		d := src.Bits(n)
		tot := 0
		for j := 0; j < p.Rows(); j++ {
			sBit, err := bitmatrix.DotCol(candidate, p.M, j)
			if err != nil {
				return false
			}
			if !sBit {
				continue
			}
			dBit, err := bitmatrix.DotCol(d, p.M, j)
			if err != nil {
				return false
			}
			if dBit {
				tot++
			}
		}
		r := tot % 4
		if r != 0 && r != 3 {
			return false
		}
	}
	return true
}
