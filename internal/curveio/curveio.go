// Package curveio reads and writes two-column numeric curves as CSV.
package curveio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Default column names.
const (
	DefaultX = "x"
	DefaultY = "y"
)

var (
	ErrNoHeader       = errors.New("curveio: missing header row")
	ErrUnknownColumn  = errors.New("curveio: unknown column")
	ErrParse          = errors.New("curveio: invalid number")
	ErrLengthMismatch = errors.New("curveio: x and y must have same length")
)

// Read parses a header-first CSV and returns the columns selected by xCol
// and yCol. A column is matched by header name first and by zero-based
// index second; empty selectors fall back to DefaultX and DefaultY.
func Read(r io.Reader, xCol, yCol string) (x, y []float64, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, ErrNoHeader
	}
	if err != nil {
		return nil, nil, fmt.Errorf("curveio: header: %w", err)
	}

	header = append([]string(nil), header...)

	xi, err := column(header, xCol, DefaultX)
	if err != nil {
		return nil, nil, err
	}
	yi, err := column(header, yCol, DefaultY)
	if err != nil {
		return nil, nil, err
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("curveio: %w", err)
		}

		line, _ := cr.FieldPos(0)

		xv, err := parse(rec[xi], line, header[xi])
		if err != nil {
			return nil, nil, err
		}
		yv, err := parse(rec[yi], line, header[yi])
		if err != nil {
			return nil, nil, err
		}

		x = append(x, xv)
		y = append(y, yv)
	}

	return x, y, nil
}

// Write emits header followed by one row per (x[i], y[i]) pair using the
// shortest representation that round-trips.
func Write(w io.Writer, header [2]string, x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header[:]); err != nil {
		return err
	}

	row := make([]string, 2)
	for i := range x {
		row[0] = strconv.FormatFloat(x[i], 'g', -1, 64)
		row[1] = strconv.FormatFloat(y[i], 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func column(header []string, sel, def string) (int, error) {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		sel = def
	}

	for i, h := range header {
		if strings.TrimSpace(h) == sel {
			return i, nil
		}
	}

	if i, err := strconv.Atoi(sel); err == nil && i >= 0 && i < len(header) {
		return i, nil
	}

	return 0, fmt.Errorf("%w %q (header: %s)", ErrUnknownColumn, sel, strings.Join(header, ","))
}

func parse(field string, line int, col string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d, column %q: %q", ErrParse, line, col, field)
	}
	return v, nil
}
