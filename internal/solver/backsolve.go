package solver

import (
	"fmt"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/xerr"
)

// maxFreeColumns caps n - rank(S) so the candidate set (2^(n-rank)
// vectors) never blows up uncontrollably, per spec.md §9.
const maxFreeColumns = 20

// Candidates holds the solution set of an upper-triangular system: an
// n x count matrix whose columns are the individual candidate keys.
type Candidates struct {
	M *bitmatrix.Matrix
}

// Count returns the number of candidate keys.
func (c *Candidates) Count() int { return c.M.Cols() }

// Key returns candidate i as a length-n vector.
func (c *Candidates) Key(i int) (*bitmatrix.Matrix, error) {
	words, err := c.M.Column(i)
	if err != nil {
		return nil, err
	}
	return bitmatrix.FromColumnWords(c.M.Rows(), words), nil
}

// BackSolve enumerates every solution of sys (spec.md §4.4): columns
// are processed from n-1 down to 0; a column without a pivot is free
// and doubles the witness-row set, then every column above the pivot
// is back-eliminated against it.
func BackSolve(sys *System) (*Candidates, error) {
	n := sys.N
	freeCount := n - sys.Rank
	if freeCount > maxFreeColumns {
		return nil, fmt.Errorf("xprogram: n-rank=%d: %w", freeCount, xerr.ErrTooManyFreeColumns)
	}
	numWitness := 1 << uint(freeCount)

	// work holds, in its first n rows, the coefficient rows of the
	// system (shared across all candidates), and in rows n..n+numWitness-1
	// one row per eventual candidate key.
	totalRows := n + numWitness
	work := bitmatrix.New(totalRows, n)
	for col := 0; col < n; col++ {
		for row := 0; row <= n; row++ { // n+1 original rows: 0..n-1 coeffs, row n = first witness
			bit, err := sys.S.GetRC(row, col)
			if err != nil {
				return nil, err
			}
			if bit {
				if err := work.SetRC(row, col, true); err != nil {
					return nil, err
				}
			}
		}
	}

	used := 1 // number of witness rows populated so far
	for k := n - 1; k >= 0; k-- {
		pivoted, err := work.GetRC(k, k)
		if err != nil {
			return nil, err
		}
		if !pivoted {
			if err := work.SetRC(k, k, true); err != nil {
				return nil, err
			}
			for w := 0; w < used; w++ {
				srcRow := n + w
				dstRow := n + used + w
				for col := 0; col < n; col++ {
					bit, err := work.GetRC(srcRow, col)
					if err != nil {
						return nil, err
					}
					if bit {
						if err := work.SetRC(dstRow, col, true); err != nil {
							return nil, err
						}
					}
				}
				if err := work.SetRC(dstRow, k, true); err != nil {
					return nil, err
				}
			}
			used *= 2
		}

		for j := k - 1; j >= 0; j-- {
			bit, err := work.GetRC(k, j)
			if err != nil {
				return nil, err
			}
			if bit {
				if err := bitmatrix.AddColInPlace(work, j, k); err != nil {
					return nil, err
				}
			}
		}
	}

	out := bitmatrix.New(n, numWitness)
	for w := 0; w < numWitness; w++ {
		v := bitmatrix.New(n, 1)
		for col := 0; col < n; col++ {
			bit, err := work.GetRC(n+w, col)
			if err != nil {
				return nil, err
			}
			if bit {
				if err := v.Set(col, true); err != nil {
					return nil, err
				}
			}
		}
		if err := bitmatrix.SetColumn(out, w, v); err != nil {
			return nil, err
		}
	}
	return &Candidates{M: out}, nil
}
