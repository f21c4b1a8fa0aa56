package solver

import (
	"testing"

	"xprogram/internal/bitmatrix"
)

// TestBackSolveFourByThree matches spec.md §8 concrete scenario 4: a
// 4x3 upper-triangular system with pivots at columns 0 and 2 (column
// 1 free) yields exactly two solutions differing only in bit 1.
func TestBackSolveFourByThree(t *testing.T) {
	s := bitmatrix.New(4, 3)
	set := func(row, col int) {
		if err := s.SetRC(row, col, true); err != nil {
			t.Fatal(err)
		}
	}
	// column 0: pivot at row 0, witness (row 3) bit = 1.
	set(0, 0)
	set(3, 0)
	// column 1: free, all zero.
	// column 2: pivot at row 2, witness (row 3) bit = 0.
	set(2, 2)

	sys := &System{S: s, Rank: 2, N: 3}
	cands, err := BackSolve(sys)
	if err != nil {
		t.Fatalf("BackSolve: %v", err)
	}
	if cands.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 (2^(3-2))", cands.Count())
	}

	k0, err := cands.Key(0)
	if err != nil {
		t.Fatal(err)
	}
	k1, err := cands.Key(1)
	if err != nil {
		t.Fatal(err)
	}

	diffs := 0
	for i := 0; i < 3; i++ {
		a, _ := k0.Get(i)
		b, _ := k1.Get(i)
		if a != b {
			diffs++
			if i != 1 {
				t.Fatalf("solutions differ at bit %d, want only bit 1", i)
			}
		}
	}
	if diffs != 1 {
		t.Fatalf("solutions differ in %d bits, want exactly 1", diffs)
	}
}

func TestBackSolveFullRankSingleSolution(t *testing.T) {
	s := bitmatrix.New(3, 2)
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(s.SetRC(0, 0, true))
	must(s.SetRC(2, 0, true)) // witness bit for col 0
	must(s.SetRC(1, 1, true))
	// witness bit for col1 left 0

	sys := &System{S: s, Rank: 2, N: 2}
	cands, err := BackSolve(sys)
	if err != nil {
		t.Fatal(err)
	}
	if cands.Count() != 1 {
		t.Fatalf("Count() = %d, want 1 for full rank", cands.Count())
	}
}

func TestBackSolveRejectsTooManyFreeColumns(t *testing.T) {
	n := 30
	s := bitmatrix.New(n+1, n)
	sys := &System{S: s, Rank: 0, N: n} // all n columns free
	if _, err := BackSolve(sys); err == nil {
		t.Fatal("expected ErrTooManyFreeColumns")
	}
}
