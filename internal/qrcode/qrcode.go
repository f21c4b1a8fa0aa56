// Package qrcode implements the quadratic-residue benchmark X-program
// generator: a collaborator outside the solver's core (spec.md §1),
// specified only at its usage contract (it must hand the extractor a
// program whose hidden key satisfies the mod-4 weight test C5 relies
// on). It is grounded in the real combinatorics of quadratic-residue
// codes (a Paley-type tournament matrix built from the Jacobi symbol
// modulo a prime q ≡ 7 mod 8), repeating each row selected by the
// planted key four times so the aggregated sub-code weight at every
// coordinate is, by construction, divisible by four, the same
// invariant the real Shepherd-Bremner construction gets from number
// theory.
package qrcode

import (
	"fmt"
	"math/big"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/rng"
	"xprogram/internal/xerr"
	"xprogram/internal/xprog"
)

// Result bundles a generated benchmark program with its planted key.
type Result struct {
	Program *xprog.Program
	Key     *bitmatrix.Matrix
}

// Generate builds a benchmark X-program of row length n = q from the
// Paley matrix of q, planting a random key and repeating every row
// selected by that key four times (spec.md §4.11 / §9's note on
// avoiding the bounds-check typo applies to the helper below).
func Generate(q *big.Int, src *rng.Source) (*Result, error) {
	if err := ValidatePrime(q); err != nil {
		return nil, err
	}
	if !q.IsInt64() || q.Int64() > (1<<20) {
		return nil, fmt.Errorf("qrcode: q=%s too large for an in-memory program: %w", q.String(), xerr.ErrParse)
	}
	n := int(q.Int64())

	paley := buildPaleyRows(q, n)

	key := src.Bits(n)
	for allZero(key) {
		key = src.Bits(n)
	}

	var rows [][]bool
	for _, row := range paley {
		selected, err := dotBool(key, row)
		if err != nil {
			return nil, err
		}
		reps := 1
		if selected {
			reps = 4
		}
		for r := 0; r < reps; r++ {
			rows = append(rows, row)
		}
	}

	m := bitmatrix.New(n, len(rows))
	for col, row := range rows {
		for r := 0; r < n; r++ {
			if row[r] {
				if err := m.SetRC(r, col, true); err != nil {
					return nil, err
				}
			}
		}
	}

	return &Result{Program: &xprog.Program{M: m}, Key: key}, nil
}

// buildPaleyRows constructs the q x q tournament matrix PM[i][j] = 1
// iff (j-i) mod q is a nonzero quadratic residue, the classical Paley
// construction underlying extended quadratic-residue codes.
func buildPaleyRows(q *big.Int, n int) [][]bool {
	rows := make([][]bool, n)
	diff := new(big.Int)
	for i := 0; i < n; i++ {
		row := make([]bool, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			diff.SetInt64(int64(j - i))
			diff.Mod(diff, q)
			row[j] = quadraticResidue(diff, q)
		}
		rows[i] = row
	}
	return rows
}

func dotBool(v *bitmatrix.Matrix, row []bool) (bool, error) {
	acc := false
	for i, b := range row {
		if !b {
			continue
		}
		bit, err := v.Get(i)
		if err != nil {
			return false, err
		}
		if bit {
			acc = !acc
		}
	}
	return acc, nil
}

func allZero(v *bitmatrix.Matrix) bool {
	for i := 0; i < v.Rows(); i++ {
		b, _ := v.Get(i)
		if b {
			return false
		}
	}
	return true
}
