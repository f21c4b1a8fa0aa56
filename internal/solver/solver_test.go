package solver

import (
	"context"
	"math/big"
	"testing"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/qrcode"
	"xprogram/internal/rng"
	"xprogram/internal/xprog"
)

// buildQuadrupledFixture constructs a tiny hand-built X-program whose
// planted key s is guaranteed, by construction, to pass CheckKey for
// *every* possible random d: every row selected by dot(s, row)=1 is
// repeated exactly four times, so the aggregated sub-code weight at
// every coordinate is divisible by four (spec.md §4.5's invariant,
// made unconditional rather than merely overwhelmingly likely).
func buildQuadrupledFixture(t *testing.T) (*xprog.Program, *bitmatrix.Matrix) {
	t.Helper()
	n := 4
	s := bitmatrix.New(n, 1)
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(s.Set(0, true)) // s = [1,0,0,0]

	rowsSelected := [][4]bool{{true, false, false, false}}
	rowsUnselected := [][4]bool{{false, true, true, false}, {false, false, true, true}}

	var cols [][4]bool
	for _, r := range rowsSelected {
		for i := 0; i < 4; i++ {
			cols = append(cols, r)
		}
	}
	cols = append(cols, rowsUnselected...)

	m := bitmatrix.New(n, len(cols))
	for c, row := range cols {
		for r := 0; r < n; r++ {
			if row[r] {
				must(m.SetRC(r, c, true))
			}
		}
	}
	return &xprog.Program{M: m}, s
}

func TestCheckKeyTrueForPlantedKey(t *testing.T) {
	p, s := buildQuadrupledFixture(t)
	src := rng.New(0xBEEFCAFE)
	if !CheckKey(p, s, src) {
		t.Fatal("CheckKey must hold unconditionally for the quadrupled construction")
	}
}

func TestCheckKeyRejectsMostWrongKeys(t *testing.T) {
	res, err := qrcode.Generate(big.NewInt(23), rng.New(0xBEEFCAFE))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	src := rng.New(1)
	passed := 0
	trials := 20
	for i := 0; i < trials; i++ {
		wrong := src.Bits(res.Program.N())
		if CheckKey(res.Program, wrong, src) {
			passed++
		}
	}
	if passed > trials/2 {
		t.Fatalf("%d/%d random wrong keys passed CheckKey, expected the statistical test to reject almost all", passed, trials)
	}
}

func TestExtractRecoversPlantedKey(t *testing.T) {
	genSrc := rng.New(0xBEEFCAFE)
	res, err := qrcode.Generate(big.NewInt(23), genSrc)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	extractSrc := rng.New(0xC0FFEE)
	key, tried, err := Extract(context.Background(), res.Program, DefaultExtractOptions(), extractSrc)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if tried == 0 {
		t.Fatal("expected at least one candidate to be tried")
	}
	checkSrc := rng.New(777)
	if !CheckKey(res.Program, key, checkSrc) {
		t.Fatal("extracted key failed CheckKey")
	}
}

func TestExtractRespectsCancellation(t *testing.T) {
	res, err := qrcode.Generate(big.NewInt(23), rng.New(0xBEEFCAFE))
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = Extract(ctx, res.Program, DefaultExtractOptions(), rng.New(1))
	if err == nil {
		t.Fatal("expected cancellation error")
	}
}
