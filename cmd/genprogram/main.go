// Command genprogram builds a benchmark X-program via the
// quadratic-residue generator and writes it alongside its planted
// key, for exercising the extractor end to end (spec.md §9, concrete
// scenario 6).
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"

	"xprogram/internal/keyenc"
	"xprogram/internal/qrcode"
	"xprogram/internal/rng"
	"xprogram/internal/xprog"
)

func main() {
	q := flag.Int64("q", 103, "prime modulus, must be ≡ 7 (mod 8)")
	bits := flag.Int("bits", 0, "search for a random prime of this bit length instead of -q (0 disables)")
	out := flag.String("o", "program.prog", "output path for the X-program file")
	seed := flag.Uint64("seed", 0xBEEFCAFE, "32-bit seed for the deterministic bit source")
	keyOut := flag.String("key", "", "optional path to write the planted key (bin encoding)")
	flag.Parse()

	src := rng.New(uint32(*seed))

	qq := big.NewInt(*q)
	if *bits > 0 {
		var err error
		qq, err = qrcode.FindPrime(*bits)
		if err != nil {
			log.Fatalf("genprogram: find prime: %v", err)
		}
	}

	res, err := qrcode.Generate(qq, src)
	if err != nil {
		log.Fatalf("genprogram: generate: %v", err)
	}

	if err := xprog.WriteFile(*out, res.Program); err != nil {
		log.Fatalf("genprogram: write %s: %v", *out, err)
	}
	log.Printf("genprogram: wrote q=%s program (%d generators) to %s", qq.String(), res.Program.Rows(), *out)

	keyStr := keyenc.Bin(res.Key)
	if *keyOut == "" {
		fmt.Println(keyStr)
		return
	}
	if err := os.WriteFile(*keyOut, []byte(keyStr+"\n"), 0o644); err != nil {
		log.Fatalf("genprogram: write key %s: %v", *keyOut, err)
	}
}
