package solver

import (
	"math"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/rng"
	"xprogram/internal/xprog"
)

// SystemOptions bounds the number of samples the builder draws before
// giving up on reaching full rank (spec.md §4.3).
type SystemOptions struct {
	MaxIters int
}

// DefaultSystemOptions returns the spec default of ceil(1.2*n) samples.
func DefaultSystemOptions(n int) SystemOptions {
	return SystemOptions{MaxIters: int(math.Ceil(1.2 * float64(n)))}
}

// System is the (n+1) x n upper-triangular homogeneous-looking system
// built by BuildSystem, augmented by the constant column at row n.
type System struct {
	S    *bitmatrix.Matrix // shape (n+1, n)
	Rank int
	N    int
}

// BuildSystem draws samples from p until the system reaches full rank
// n or the iteration budget is exhausted, per spec.md §4.3.
func BuildSystem(p *xprog.Program, opts SystemOptions, src *rng.Source) (*System, error) {
	n := p.N()
	s := bitmatrix.New(n+1, n)
	rank := 0
	d := src.Bits(n)

	for iter := 0; iter < opts.MaxIters && rank < n; iter++ {
		v, err := Sample(p, d, src)
		if err != nil {
			return nil, err
		}
		vp := bitmatrix.New(n+1, 1)
		for i := 0; i < n; i++ {
			bit, _ := v.Get(i)
			if bit {
				_ = vp.Set(i, true)
			}
		}
		_ = vp.Set(n, true)

		for k := 0; k < n; k++ {
			bit, err := vp.Get(k)
			if err != nil {
				return nil, err
			}
			if !bit {
				continue
			}
			pivoted, err := s.GetRC(k, k)
			if err != nil {
				return nil, err
			}
			if pivoted {
				if err := bitmatrix.AddCol(vp, s, k); err != nil {
					return nil, err
				}
				continue
			}
			if err := bitmatrix.SetColumn(s, k, vp); err != nil {
				return nil, err
			}
			rank++
			break
		}
	}

	return &System{S: s, Rank: rank, N: n}, nil
}
