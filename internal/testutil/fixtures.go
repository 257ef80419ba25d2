package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// WriteCSV writes header and numeric columns as a comma-separated file in a
// fresh temporary directory and returns its path. All columns must have the
// same length.
func WriteCSV(t *testing.T, name string, header []string, columns ...[]float64) string {
	t.Helper()
	if len(header) != len(columns) {
		t.Fatalf("WriteCSV: %d header names for %d columns", len(header), len(columns))
	}

	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	b.WriteByte('\n')
	rows := 0
	if len(columns) > 0 {
		rows = len(columns[0])
	}
	for r := 0; r < rows; r++ {
		for c, col := range columns {
			if len(col) != rows {
				t.Fatalf("WriteCSV: column %q has %d rows, want %d", header[c], len(col), rows)
			}
			if c > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatFloat(col[r], 'g', -1, 64))
		}
		b.WriteByte('\n')
	}

	return WriteFile(t, name, b.String())
}

// WriteFile writes content verbatim to name inside a temporary directory.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
	return path
}

// WellLogFixture holds the five-sample well used across pipeline tests.
type WellLogFixture struct {
	Depth, Density, Sonic, Shale, Sand []float64
}

// FiveSampleWell returns a synthetic well: constant 100 µs/ft sonic, equal
// shale and sand fractions, and a density log straddling the 2.65 ceiling.
func FiveSampleWell() WellLogFixture {
	return WellLogFixture{
		Depth:   []float64{5100, 5200, 5300, 5400, 5450},
		Density: []float64{2.0, 2.6, 2.7, 2.8, 2.65},
		Sonic:   []float64{100, 100, 100, 100, 100},
		Shale:   []float64{0.5, 0.5, 0.5, 0.5, 0.5},
		Sand:    []float64{0.5, 0.5, 0.5, 0.5, 0.5},
	}
}

// WriteFiles writes the fixture as a well-log table (depth, gr, nphi, rhob, dt)
// and a petrophysical table (vsh, vsand), mirroring the positional layout of
// the field data, and returns both paths.
func (f WellLogFixture) WriteFiles(t *testing.T) (wellPath, petroPath string) {
	t.Helper()
	filler := make([]float64, len(f.Depth))
	wellPath = WriteCSV(t, "well.csv",
		[]string{"depth", "gr", "nphi", "rhob", "dt"},
		f.Depth, filler, filler, f.Density, f.Sonic)
	petroPath = WriteCSV(t, "petrophysical.csv",
		[]string{"vsh", "vsand"},
		f.Shale, f.Sand)
	return wellPath, petroPath
}
