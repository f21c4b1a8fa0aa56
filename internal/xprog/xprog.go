// Package xprog implements the X-program text file format (spec.md
// §6.1): an X-program is read and written in its original nr x nc
// row-major text form but held in memory transposed, because the
// solver's hot path is a dot product against an entire generator
// (a "row" of the original program).
package xprog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"xprogram/internal/bitmatrix"
	"xprogram/internal/xerr"
)

// Program is an X-program held transposed: column c (0-based) is the
// c-th row of the original nr x nc text representation, of length nc.
type Program struct {
	M *bitmatrix.Matrix
}

// N is the length of each original row (= nc in the text format).
func (p *Program) N() int { return p.M.Rows() }

// Rows is the number of original rows / generators (= nr in the text format).
func (p *Program) Rows() int { return p.M.Cols() }

// Column returns column j (the j-th original row) as a length-N(p) vector.
func (p *Program) Column(j int) (*bitmatrix.Matrix, error) {
	if j < 0 || j >= p.Rows() {
		return nil, fmt.Errorf("xprog: row %d: %w", j, xerr.ErrOutOfBounds)
	}
	words, err := p.M.Column(j)
	if err != nil {
		return nil, err
	}
	return bitmatrix.FromColumnWords(p.N(), words), nil
}

func stripPrefix(line, prefix string) (string, error) {
	if len(line) < len(prefix) || line[:len(prefix)] != prefix {
		return "", fmt.Errorf("xprog: expected %q prefix, got %q: %w", prefix, line, xerr.ErrParse)
	}
	return line[len(prefix):], nil
}

// Load parses an X-program from r following the §6.1 contract.
func Load(r io.Reader) (*Program, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("xprog: empty input: %w", xerr.ErrParse)
	}
	nrStr, err := stripPrefix(sc.Text(), "nr = ")
	if err != nil {
		return nil, err
	}
	nr, err := strconv.Atoi(strings.TrimSpace(nrStr))
	if err != nil {
		return nil, fmt.Errorf("xprog: bad nr value %q: %w", nrStr, xerr.ErrParse)
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("xprog: missing nc line: %w", xerr.ErrParse)
	}
	ncStr, err := stripPrefix(sc.Text(), "nc = ")
	if err != nil {
		return nil, err
	}
	nc, err := strconv.Atoi(strings.TrimSpace(ncStr))
	if err != nil {
		return nil, fmt.Errorf("xprog: bad nc value %q: %w", ncStr, xerr.ErrParse)
	}

	if nr < 0 || nc < 0 {
		return nil, fmt.Errorf("xprog: negative dimension nr=%d nc=%d: %w", nr, nc, xerr.ErrParse)
	}

	// in-memory: rows = nc (original row length), cols = nr (row count)
	m := bitmatrix.New(nc, nr)
	for row := 0; row < nr; row++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("xprog: expected %d data lines, got %d: %w", nr, row, xerr.ErrParse)
		}
		tokens := strings.Fields(sc.Text())
		if len(tokens) < nc {
			return nil, fmt.Errorf("xprog: row %d has %d tokens, want %d: %w", row, len(tokens), nc, xerr.ErrParse)
		}
		for col := 0; col < nc; col++ {
			var bit bool
			switch tokens[col] {
			case "0":
				bit = false
			case "1":
				bit = true
			default:
				return nil, fmt.Errorf("xprog: row %d token %d = %q, want 0/1: %w", row, col, tokens[col], xerr.ErrParse)
			}
			if bit {
				if err := m.SetRC(col, row, true); err != nil {
					return nil, err
				}
			}
		}
	}
	// extra trailing lines (====, blank line, anything else) are tolerated.
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("xprog: %w: %v", xerr.ErrIO, err)
	}
	return &Program{M: m}, nil
}

// Save writes p following the §6.1 contract, the exact inverse of Load.
func Save(w io.Writer, p *Program) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "nr = %d\n", p.Rows()); err != nil {
		return fmt.Errorf("xprog: %w: %v", xerr.ErrIO, err)
	}
	if _, err := fmt.Fprintf(bw, "nc = %d\n", p.N()); err != nil {
		return fmt.Errorf("xprog: %w: %v", xerr.ErrIO, err)
	}
	for row := 0; row < p.Rows(); row++ {
		var sb strings.Builder
		for col := 0; col < p.N(); col++ {
			bit, err := p.M.GetRC(col, row)
			if err != nil {
				return err
			}
			if bit {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return fmt.Errorf("xprog: %w: %v", xerr.ErrIO, err)
		}
	}
	if _, err := bw.WriteString("=====\n\n"); err != nil {
		return fmt.Errorf("xprog: %w: %v", xerr.ErrIO, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("xprog: %w: %v", xerr.ErrIO, err)
	}
	return nil
}

// ReadFile loads an X-program from path.
func ReadFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xprog: open %s: %w: %v", path, xerr.ErrIO, err)
	}
	defer f.Close()
	return Load(f)
}

// WriteFile saves an X-program to path.
func WriteFile(path string, p *Program) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("xprog: create %s: %w: %v", path, xerr.ErrIO, err)
	}
	if err := Save(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
