package welllog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WellLog holds the measured logs indexed by depth.
type WellLog struct {
	Depth   []float64 // ft
	Density []float64 // g/cc
	Sonic   []float64 // µs/ft
}

// Len returns the number of depth samples.
func (w WellLog) Len() int { return len(w.Depth) }

// Petrophysics holds the volume fractions interpreted for each depth sample.
type Petrophysics struct {
	Shale []float64
	Sand  []float64
}

// Len returns the number of samples.
func (p Petrophysics) Len() int { return len(p.Shale) }

// ReadWellLog parses a comma-separated well-log table.
func ReadWellLog(r io.Reader, cols Columns) (WellLog, error) {
	data, err := readFields(r, []field{
		{"depth", cols.Depth},
		{"density", cols.Density},
		{"sonic", cols.Sonic},
	})
	if err != nil {
		return WellLog{}, err
	}
	return WellLog{Depth: data[0], Density: data[1], Sonic: data[2]}, nil
}

// ReadPetrophysics parses a comma-separated petrophysical table.
func ReadPetrophysics(r io.Reader, cols Columns) (Petrophysics, error) {
	data, err := readFields(r, []field{
		{"shale", cols.Shale},
		{"sand", cols.Sand},
	})
	if err != nil {
		return Petrophysics{}, err
	}
	return Petrophysics{Shale: data[0], Sand: data[1]}, nil
}

// LoadWellLog reads the well-log table at path.
func LoadWellLog(path string, cols Columns) (WellLog, error) {
	var w WellLog
	err := withFile(path, func(r io.Reader) (err error) {
		w, err = ReadWellLog(r, cols)
		return err
	})
	return w, err
}

// LoadPetrophysics reads the petrophysical table at path.
func LoadPetrophysics(path string, cols Columns) (Petrophysics, error) {
	var p Petrophysics
	err := withFile(path, func(r io.Reader) (err error) {
		p, err = ReadPetrophysics(r, cols)
		return err
	})
	return p, err
}

// CheckAligned verifies that both tables describe the same depth samples.
func CheckAligned(w WellLog, p Petrophysics) error {
	if w.Len() != p.Len() || len(p.Sand) != len(p.Shale) {
		return fmt.Errorf("%w: well log %d, petrophysical %d", ErrRowCount, w.Len(), p.Len())
	}
	return nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("welllog: %w", err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func newReader(r io.Reader) *csv.Reader {
	rd := csv.NewReader(r)
	rd.TrimLeadingSpace = true
	rd.ReuseRecord = true
	return rd
}

// readFields returns one column per field, in field order.
func readFields(r io.Reader, fields []field) ([][]float64, error) {
	rd := newReader(r)

	header, err := rd.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, wrapCSV(err)
	}
	header = append([]string(nil), header...)

	idx, err := resolve(header, fields)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(fields))
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapCSV(err)
		}
		for i, col := range idx {
			v, err := parseCell(rd, rec, col, header[col])
			if err != nil {
				return nil, err
			}
			out[i] = append(out[i], v)
		}
	}

	if len(out) > 0 && len(out[0]) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

func parseCell(rd *csv.Reader, rec []string, col int, name string) (float64, error) {
	cell := strings.TrimSpace(rec[col])
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		line, _ := rd.FieldPos(col)
		return 0, fmt.Errorf("%w: line %d, column %q: %q", ErrNonNumeric, line, name, cell)
	}
	return v, nil
}

func wrapCSV(err error) error {
	if errors.Is(err, csv.ErrFieldCount) {
		return fmt.Errorf("%w: %v", ErrRowWidth, err)
	}
	return fmt.Errorf("welllog: %w", err)
}
