package solver

import (
	"math"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/rng"
)

// acceptanceBias is theta = 1/cos^2(pi/8) - 1 from spec.md §4.7: the
// extra acceptance probability given to vectors orthogonal to s, so
// the resulting distribution matches the IQP sampling bias
// cos^2(pi/8) ≈ 0.854 on non-orthogonal draws.
var acceptanceBias = 1/math.Pow(math.Cos(math.Pi/8), 2) - 1

// GenSamples synthesizes nsamples biased bitstrings for a known
// secret key s, returning them as the columns of an n x nsamples
// matrix (spec.md §4.7).
func GenSamples(s *bitmatrix.Matrix, nsamples int, src *rng.Source) (*bitmatrix.Matrix, error) {
	n := s.Rows()
	out := bitmatrix.New(n, nsamples)
	for accepted := 0; accepted < nsamples; {
		v := src.Bits(n)
		hit, err := bitmatrix.Dot(v, s)
		if err != nil {
			return nil, err
		}
		if hit || src.Float64() < acceptanceBias {
			if err := bitmatrix.SetColumn(out, accepted, v); err != nil {
				return nil, err
			}
			accepted++
		}
	}
	return out, nil
}
