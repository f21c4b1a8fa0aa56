package qrcode

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"xprogram/internal/xerr"
)

// ValidatePrime checks that q is an odd prime congruent to 7 mod 8,
// the modulus family the quadratic-residue benchmark construction
// requires (spec.md glossary, "Quadratic-residue code").
func ValidatePrime(q *big.Int) error {
	if q == nil || q.Sign() <= 0 {
		return fmt.Errorf("qrcode: q must be positive: %w", xerr.ErrParse)
	}
	eight := big.NewInt(8)
	mod8 := new(big.Int).Mod(q, eight)
	if mod8.Int64() != 7 {
		return fmt.Errorf("qrcode: q=%s is not congruent to 7 mod 8: %w", q.String(), xerr.ErrParse)
	}
	if !q.ProbablyPrime(30) {
		return fmt.Errorf("qrcode: q=%s is not prime: %w", q.String(), xerr.ErrParse)
	}
	return nil
}

// FindPrime searches for a random `bits`-bit prime congruent to 7 mod
// 8, suitable for the benchmark generator. It draws candidates from
// crypto/rand and tests primality with ProbablyPrime, matching the
// validation style of the library's other parameter constructors.
func FindPrime(bits int) (*big.Int, error) {
	if bits < 4 {
		return nil, fmt.Errorf("qrcode: bits=%d too small: %w", bits, xerr.ErrParse)
	}
	const maxTries = 1 << 16
	for i := 0; i < maxTries; i++ {
		cand, err := rand.Prime(rand.Reader, bits)
		if err != nil {
			return nil, fmt.Errorf("qrcode: %w: %v", xerr.ErrIO, err)
		}
		mod8 := new(big.Int).Mod(cand, big.NewInt(8))
		if mod8.Int64() == 7 {
			return cand, nil
		}
	}
	return nil, fmt.Errorf("qrcode: no %d-bit prime ≡7 mod 8 found after %d tries", bits, maxTries)
}

// quadraticResidue reports whether a is a nonzero quadratic residue
// modulo the prime q, via the Jacobi symbol (equal to the Legendre
// symbol for a prime modulus).
func quadraticResidue(a, q *big.Int) bool {
	return big.Jacobi(a, q) == 1
}
