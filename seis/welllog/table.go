package welllog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var ErrRaggedTable = errors.New("welllog: table columns differ in length")

// Table is a set of named, equally long numeric columns. Rows correspond to
// depth samples.
type Table struct {
	Header  []string
	Columns [][]float64
}

// Rows returns the number of samples per column.
func (t Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0])
}

// Column returns the column named name.
func (t Table) Column(name string) ([]float64, bool) {
	for i, h := range t.Header {
		if h == name && i < len(t.Columns) {
			return t.Columns[i], true
		}
	}
	return nil, false
}

func (t Table) validate() error {
	if len(t.Header) != len(t.Columns) {
		return fmt.Errorf("%w: %d names for %d columns", ErrRaggedTable, len(t.Header), len(t.Columns))
	}
	n := t.Rows()
	for i, c := range t.Columns {
		if len(c) != n {
			return fmt.Errorf("%w: column %q has %d rows, want %d", ErrRaggedTable, t.Header[i], len(c), n)
		}
	}
	return nil
}

// WriteTable writes t as CSV: one header line, then one line per row, with
// the shortest decimal form that parses back to the identical float64.
func WriteTable(w io.Writer, t Table) error {
	if err := t.validate(); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("welllog: write header: %w", err)
	}

	rec := make([]string, len(t.Columns))
	for r := 0; r < t.Rows(); r++ {
		for c, col := range t.Columns {
			rec[c] = strconv.FormatFloat(col[r], 'g', -1, 64)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("welllog: write row %d: %w", r, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("welllog: flush: %w", err)
	}
	return nil
}

// ReadTable parses a table written by [WriteTable]. Every column must be
// numeric; the header order is preserved.
func ReadTable(r io.Reader) (Table, error) {
	rd := newReader(r)

	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return Table{}, ErrEmptyTable
	}
	if err != nil {
		return Table{}, wrapCSV(err)
	}
	header = append([]string(nil), header...)

	cols := make([][]float64, len(header))
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, wrapCSV(err)
		}
		for c := range header {
			v, err := parseCell(rd, rec, c, header[c])
			if err != nil {
				return Table{}, err
			}
			cols[c] = append(cols[c], v)
		}
	}

	if len(cols) > 0 && len(cols[0]) == 0 {
		return Table{}, ErrNoRows
	}
	return Table{Header: header, Columns: cols}, nil
}

// SaveTable writes t to path, replacing any existing file.
func SaveTable(path string, t Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("welllog: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("welllog: close %s: %w", path, cerr)
		}
	}()

	if err := WriteTable(f, t); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadTable reads a table from path.
func LoadTable(path string) (Table, error) {
	var t Table
	err := withFile(path, func(r io.Reader) (err error) {
		t, err = ReadTable(r)
		return err
	})
	return t, err
}
