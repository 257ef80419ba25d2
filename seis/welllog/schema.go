package welllog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyTable    = errors.New("welllog: table is empty")
	ErrNoRows        = errors.New("welllog: table has a header but no rows")
	ErrMissingColumn = errors.New("welllog: required column not found")
	ErrNoAliases     = errors.New("welllog: column has no accepted names")
	ErrRowWidth      = errors.New("welllog: row has the wrong number of cells")
	ErrNonNumeric    = errors.New("welllog: cell is not numeric")
	ErrRowCount      = errors.New("welllog: tables have different row counts")
)

// Columns lists the accepted header names for every field the loaders read.
type Columns struct {
	Depth   []string `yaml:"depth"`
	Density []string `yaml:"density"`
	Sonic   []string `yaml:"sonic"`
	Shale   []string `yaml:"shale"`
	Sand    []string `yaml:"sand"`
}

// DefaultColumns returns the aliases used by common LAS exports.
func DefaultColumns() Columns {
	return Columns{
		Depth:   []string{"depth", "dept", "md"},
		Density: []string{"rhob", "rho", "density", "den"},
		Sonic:   []string{"dt", "dtc", "dtco", "sonic"},
		Shale:   []string{"vsh", "vshale", "v_shale", "shale"},
		Sand:    []string{"vsand", "v_sand", "sand"},
	}
}

// Validate reports a field without any accepted name.
func (c Columns) Validate() error {
	for _, f := range []field{
		{"depth", c.Depth},
		{"density", c.Density},
		{"sonic", c.Sonic},
		{"shale", c.Shale},
		{"sand", c.Sand},
	} {
		if len(f.aliases) == 0 {
			return fmt.Errorf("%w: %s", ErrNoAliases, f.name)
		}
	}
	return nil
}

type field struct {
	name    string
	aliases []string
}

// resolve maps each field to its column index in header.
func resolve(header []string, fields []field) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		key := normalize(h)
		if _, dup := pos[key]; !dup {
			pos[key] = i
		}
	}

	idx := make([]int, len(fields))
	for i, f := range fields {
		if len(f.aliases) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoAliases, f.name)
		}
		found := -1
		for _, a := range f.aliases {
			if p, ok := pos[normalize(a)]; ok {
				found = p
				break
			}
		}
		if found < 0 {
			return nil, fmt.Errorf("%w: %s (accepted: %s; header: %s)",
				ErrMissingColumn, f.name, strings.Join(f.aliases, ", "), strings.Join(header, ", "))
		}
		idx[i] = found
	}
	return idx, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")))
}
