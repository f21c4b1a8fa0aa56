package solver

import (
	"testing"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/rng"
)

func TestGenSamplesReturnsRequestedCount(t *testing.T) {
	n := 16
	s := rng.New(5).Bits(n)
	out, err := GenSamples(s, 25, rng.New(6))
	if err != nil {
		t.Fatalf("GenSamples: %v", err)
	}
	if out.Cols() != 25 {
		t.Fatalf("Cols() = %d, want 25", out.Cols())
	}
	if out.Rows() != n {
		t.Fatalf("Rows() = %d, want %d", out.Rows(), n)
	}
}

// TestGenSamplesMajorityNonOrthogonal checks the bias direction
// described in spec.md §4.7: most accepted samples are non-orthogonal
// to s (dot(v, s) = 1), since acceptance is guaranteed on that branch
// and only probabilistic (at rate theta ≈ 0.17) otherwise.
func TestGenSamplesMajorityNonOrthogonal(t *testing.T) {
	n := 32
	s := rng.New(9).Bits(n)
	out, err := GenSamples(s, 200, rng.New(10))
	if err != nil {
		t.Fatalf("GenSamples: %v", err)
	}
	hits := 0
	for c := 0; c < out.Cols(); c++ {
		words, err := out.Column(c)
		if err != nil {
			t.Fatal(err)
		}
		v := bitmatrix.FromColumnWords(n, words)
		ok, err := bitmatrix.Dot(v, s)
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			hits++
		}
	}
	if hits < out.Cols()/2 {
		t.Fatalf("only %d/%d accepted samples were non-orthogonal to s, expected a clear majority", hits, out.Cols())
	}
}
