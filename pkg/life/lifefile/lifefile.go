// Package lifefile reads and writes the "#Toroidal Life" and "#Resizable
// Life" pattern dialects.
//
// A file is a header line, optional "#D" description lines, a rule line
// ("#N" for S23/B3 or "#R <survival>/<birth>"), for the toroidal dialect a
// "#S <width> <height>" line, then one "<row> <col>" pair per live cell.
// Surrounding whitespace and blank lines are ignored.
package lifefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"life-ca/pkg/life"
)

const (
	HeaderToroidal  = "#Toroidal Life"
	HeaderResizable = "#Resizable Life"
)

var (
	ErrUnknownFormat  = errors.New("unknown file format")
	ErrIO             = errors.New("io error")
	ErrIncompleteFile = errors.New("incomplete or empty file")
	ErrRuleParsing    = errors.New("invalid ruleset")
	ErrCoordParsing   = errors.New("invalid coordinates")
)

// ParseError locates a decoding failure. Line is the 1-based number of the
// offending line in the input, or 0 when the failure is not tied to a line.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "lifefile: " + e.Err.Error()
	}
	return fmt.Sprintf("lifefile: line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Pattern is the decoded content of a life file. Size is nil for the
// resizable dialect, whose grid is sized from the cells.
type Pattern struct {
	Topology    life.Topology
	Rules       life.RuleSet
	Size        *life.Size
	Cells       []life.Cell
	Description []string
}

type line struct {
	no   int
	text string
}

func readLines(r io.Reader) ([]line, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	no := 0
	for sc.Scan() {
		no++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{no: no, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	return lines, nil
}

// Decode parses a whole life file. Nothing is returned unless every line is
// valid.
func Decode(r io.Reader) (Pattern, error) {
	lines, err := readLines(r)
	if err != nil {
		return Pattern{}, err
	}
	d := decoder{lines: lines}
	return d.decode()
}

type decoder struct {
	lines []line
	pos   int
}

func (d *decoder) peek() (line, bool) {
	if d.pos >= len(d.lines) {
		return line{}, false
	}
	return d.lines[d.pos], true
}

func (d *decoder) next() (line, error) {
	l, ok := d.peek()
	if !ok {
		return line{}, &ParseError{Err: ErrIncompleteFile}
	}
	d.pos++
	return l, nil
}

func (d *decoder) decode() (Pattern, error) {
	var p Pattern
	header, err := d.next()
	if err != nil {
		return p, err
	}
	switch header.text {
	case HeaderToroidal:
		p.Topology = life.Toroidal
	case HeaderResizable:
		p.Topology = life.Bounded
	default:
		return p, &ParseError{Line: header.no, Err: ErrUnknownFormat}
	}

	for {
		l, ok := d.peek()
		if !ok || !strings.HasPrefix(l.text, "#D") {
			break
		}
		p.Description = append(p.Description, strings.TrimSpace(strings.TrimPrefix(l.text, "#D")))
		d.pos++
	}

	if p.Rules, err = d.rules(); err != nil {
		return p, err
	}

	if p.Topology == life.Toroidal {
		size, err := d.size()
		if err != nil {
			return p, err
		}
		p.Size = &size
	}

	if _, ok := d.peek(); !ok {
		return p, &ParseError{Err: ErrIncompleteFile}
	}
	for d.pos < len(d.lines) {
		l := d.lines[d.pos]
		d.pos++
		c, err := parseCoords(l)
		if err != nil {
			return p, err
		}
		p.Cells = append(p.Cells, c)
	}
	return p, nil
}

func (d *decoder) rules() (life.RuleSet, error) {
	l, err := d.next()
	if err != nil {
		return life.RuleSet{}, err
	}
	if l.text == "#N" {
		return life.DefaultRuleSet(), nil
	}
	fields := strings.Fields(l.text)
	if len(fields) != 2 || fields[0] != "#R" {
		return life.RuleSet{}, &ParseError{Line: l.no, Err: ErrRuleParsing}
	}
	parts := strings.Split(fields[1], "/")
	if len(parts) != 2 || !isDigits(parts[0]) || !isDigits(parts[1]) {
		return life.RuleSet{}, &ParseError{Line: l.no, Err: ErrRuleParsing}
	}
	r, err := life.ParseRuleSet(fields[1])
	if err != nil {
		return life.RuleSet{}, &ParseError{Line: l.no, Err: fmt.Errorf("%w: %w", ErrRuleParsing, err)}
	}
	return r, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (d *decoder) size() (life.Size, error) {
	l, err := d.next()
	if err != nil {
		return life.Size{}, err
	}
	fields := strings.Fields(l.text)
	if len(fields) != 3 || fields[0] != "#S" {
		return life.Size{}, &ParseError{Line: l.no, Err: ErrCoordParsing}
	}
	w, err1 := parseUint(fields[1])
	h, err2 := parseUint(fields[2])
	if err1 != nil || err2 != nil {
		return life.Size{}, &ParseError{Line: l.no, Err: ErrCoordParsing}
	}
	if err := life.CheckSize(w, h); err != nil {
		return life.Size{}, &ParseError{Line: l.no, Err: fmt.Errorf("%w: %w", ErrCoordParsing, err)}
	}
	return life.Size{W: w, H: h}, nil
}

func parseCoords(l line) (life.Cell, error) {
	fields := strings.Fields(l.text)
	if len(fields) != 2 {
		return life.Cell{}, &ParseError{Line: l.no, Err: ErrCoordParsing}
	}
	row, err1 := parseUint(fields[0])
	col, err2 := parseUint(fields[1])
	if err1 != nil || err2 != nil {
		return life.Cell{}, &ParseError{Line: l.no, Err: ErrCoordParsing}
	}
	return life.Cell{Row: row, Col: col}, nil
}

// parseUint accepts plain non-negative decimal integers that fit an int.
func parseUint(s string) (int, error) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, strconv.ErrSyntax
	}
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// Grid builds the grid a pattern describes. Toroidal patterns use their
// declared size; resizable patterns are normalized so the pattern sits at
// (border, border) inside a dead margin of life.DefaultBorder cells.
func (p Pattern) Grid() (*life.Grid, error) {
	if p.Topology == life.Toroidal {
		var size life.Size
		if p.Size != nil {
			size = *p.Size
		}
		if err := life.CheckSize(size.W, size.H); err != nil {
			return nil, &ParseError{Err: fmt.Errorf("%w: %w", ErrCoordParsing, err)}
		}
		g := life.New(size.W, size.H, life.Toroidal, p.Rules)
		for _, c := range p.Cells {
			if err := g.SetCell(c.Row, c.Col, true); err != nil {
				return nil, &ParseError{Err: err}
			}
		}
		return g, nil
	}

	border := life.DefaultBorder
	if len(p.Cells) == 0 {
		return life.New(2*border, 2*border, p.Topology, p.Rules), nil
	}
	b := life.Bounds{MinRow: p.Cells[0].Row, MaxRow: p.Cells[0].Row, MinCol: p.Cells[0].Col, MaxCol: p.Cells[0].Col}
	for _, c := range p.Cells[1:] {
		b.MinRow, b.MaxRow = min(b.MinRow, c.Row), max(b.MaxRow, c.Row)
		b.MinCol, b.MaxCol = min(b.MinCol, c.Col), max(b.MaxCol, c.Col)
	}
	if b.MaxRow > math.MaxInt-2*border-1 || b.MaxCol > math.MaxInt-2*border-1 {
		return nil, &ParseError{Err: fmt.Errorf("%w: %w: pattern reaches (%d,%d)", ErrCoordParsing, life.ErrGridSize, b.MaxRow, b.MaxCol)}
	}
	size := b.Size()
	if err := life.CheckSize(size.W+2*border, size.H+2*border); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("%w: %w", ErrCoordParsing, err)}
	}
	g := life.New(size.W+2*border, size.H+2*border, p.Topology, p.Rules)
	for _, c := range p.Cells {
		if err := g.SetCell(c.Row-b.MinRow+border, c.Col-b.MinCol+border, true); err != nil {
			return nil, &ParseError{Err: err}
		}
	}
	return g, nil
}

// Load decodes a life file into a grid.
func Load(r io.Reader) (*life.Grid, error) {
	p, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return p.Grid()
}

// LoadFile reads the life file at path.
func LoadFile(path string) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}
	defer f.Close()
	return Load(f)
}
