// Command benchplot runs the extractor across a sweep of benchmark
// X-programs of increasing size and renders a timing chart, following
// the go-echarts HTML report style of the PACS sweep plotter
// (spec.md §8 concrete scenario 6: success rate and time vs n).
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"xprogram/internal/prof"
	"xprogram/internal/qrcode"
	"xprogram/internal/rng"
	"xprogram/internal/solver"
)

type sweepPoint struct {
	q         int64
	n         int
	elapsedMS float64
	tried     int
	ok        bool
}

func main() {
	qs := flag.String("qs", "7,23,31,103", "comma-separated list of prime moduli (each ≡ 7 mod 8) to sweep")
	csvOut := flag.String("csv", "benchsweep.csv", "path to write raw timing rows")
	htmlOut := flag.String("html", "benchsweep.html", "path to write the rendered chart")
	seed := flag.Uint64("seed", 0xBEEFCAFE, "32-bit seed for the deterministic bit source")
	flag.Parse()

	primes, err := parsePrimeList(*qs)
	if err != nil {
		log.Fatalf("benchplot: %v", err)
	}

	points := make([]sweepPoint, 0, len(primes))
	for _, q := range primes {
		pt := runOne(q, uint32(*seed))
		points = append(points, pt)
		log.Printf("benchplot: q=%d n=%d ok=%v tried=%d elapsed=%.1fms", pt.q, pt.n, pt.ok, pt.tried, pt.elapsedMS)
	}

	if err := writeCSV(*csvOut, points); err != nil {
		log.Fatalf("benchplot: write csv: %v", err)
	}
	if err := writeChart(*htmlOut, points); err != nil {
		log.Fatalf("benchplot: write chart: %v", err)
	}

	totals := prof.TotalByLabel(prof.SnapshotAndReset())
	for _, label := range []string{"buildsystem", "backsolve"} {
		log.Printf("benchplot: total %s time across sweep: %s", label, totals[label])
	}
}

func parsePrimeList(s string) ([]int64, error) {
	var out []int64
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			tok := s[start:i]
			start = i + 1
			if tok == "" {
				continue
			}
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("bad -qs token %q: %w", tok, err)
			}
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("-qs produced no moduli")
	}
	return out, nil
}

func runOne(q int64, seed uint32) sweepPoint {
	genSrc := rng.New(seed)
	res, err := qrcode.Generate(big.NewInt(q), genSrc)
	if err != nil {
		return sweepPoint{q: q, ok: false}
	}

	extractSrc := rng.New(seed + 1)
	start := time.Now()
	_, tried, err := solver.Extract(context.Background(), res.Program, solver.DefaultExtractOptions(), extractSrc)
	elapsed := time.Since(start)

	return sweepPoint{
		q:         q,
		n:         res.Program.N(),
		elapsedMS: float64(elapsed.Microseconds()) / 1000.0,
		tried:     tried,
		ok:        err == nil,
	}
}

func writeCSV(path string, points []sweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"q", "n", "elapsed_ms", "keys_tried", "ok"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatInt(p.q, 10),
			strconv.Itoa(p.n),
			strconv.FormatFloat(p.elapsedMS, 'f', 3, 64),
			strconv.Itoa(p.tried),
			strconv.FormatBool(p.ok),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeChart(path string, points []sweepPoint) error {
	page := components.NewPage().SetPageTitle("X-program extraction time vs n")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Extraction time vs n",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "elapsed (ms)", Type: "value"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
			},
		}),
	)

	xs := make([]string, 0, len(points))
	ys := make([]opts.LineData, 0, len(points))
	triedYs := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		xs = append(xs, strconv.Itoa(p.n))
		ys = append(ys, opts.LineData{Value: p.elapsedMS})
		triedYs = append(triedYs, opts.LineData{Value: p.tried})
	}
	line.SetXAxis(xs).
		AddSeries("elapsed (ms)", ys).
		AddSeries("keys tried", triedYs)

	page.AddCharts(line)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}
