// Package keyenc implements the two key-vector text encodings from
// spec.md §6.3: a plain ASCII bit string and a left-padded base64
// packing, plus their inverses.
package keyenc

import (
	"encoding/base64"
	"fmt"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/xerr"
)

// Bin renders v (length n, MSB-first as ordered in the vector) as an
// ASCII string of '0'/'1' characters.
func Bin(v *bitmatrix.Matrix) string {
	n := v.Rows()
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b, _ := v.Get(i)
		if b {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

// DecodeBin parses a Bin-encoded string back into a bit vector.
func DecodeBin(s string) (*bitmatrix.Matrix, error) {
	v := bitmatrix.New(len(s), 1)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			if err := v.Set(i, true); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("keyenc: byte %d is not '0'/'1': %w", i, xerr.ErrParse)
		}
	}
	return v, nil
}

// Base64 encodes v per spec.md §6.3: left-pad with
// 7 - ((n-1) mod 8) zero bits to reach a byte multiple, pack
// MSB-first per byte, then standard base64.
func Base64(v *bitmatrix.Matrix) string {
	n := v.Rows()
	if n == 0 {
		return base64.StdEncoding.EncodeToString(nil)
	}
	pad := 7 - ((n - 1) % 8)
	total := n + pad
	buf := make([]byte, total/8)
	// combined[k] for k < pad is a zero padding bit; for k >= pad it
	// is bit (k-pad) of v. Walk MSB-first within each byte.
	for k := 0; k < total; k++ {
		var bit bool
		if k >= pad {
			bit, _ = v.Get(k - pad)
		}
		if bit {
			byteIdx := k / 8
			shift := uint(7 - (k % 8))
			buf[byteIdx] |= 1 << shift
		}
	}
	return base64.StdEncoding.EncodeToString(buf)
}

// DecodeBase64 inverts Base64 for a known key length n.
func DecodeBase64(s string, n int) (*bitmatrix.Matrix, error) {
	buf, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("keyenc: %w: %v", xerr.ErrParse, err)
	}
	if n == 0 {
		return bitmatrix.New(0, 1), nil
	}
	pad := 7 - ((n - 1) % 8)
	total := n + pad
	if len(buf)*8 != total {
		return nil, fmt.Errorf("keyenc: decoded length %d bytes, want %d for n=%d: %w",
			len(buf), total/8, n, xerr.ErrParse)
	}
	v := bitmatrix.New(n, 1)
	for k := pad; k < total; k++ {
		byteIdx := k / 8
		shift := uint(7 - (k % 8))
		if buf[byteIdx]>>shift&1 == 1 {
			if err := v.Set(k-pad, true); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}
