// Package zone summarizes depth series between marker horizons.
//
// A display window [top, base] is split at each marker depth into
// contiguous intervals. Every interval includes its top and excludes its base,
// except the deepest one, which includes the window base.
package zone

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrInvalidWindow  = errors.New("zone: window top must be above its base")
	ErrLengthMismatch = errors.New("zone: series length differs from depth")
)

// Interval is a depth range between two horizons.
type Interval struct {
	Name string
	Top  float64
	Base float64
}

// Contains reports whether depth falls inside the interval. last selects the
// closed-at-base rule of the deepest interval.
func (iv Interval) Contains(depth float64, last bool) bool {
	if depth < iv.Top {
		return false
	}
	if last {
		return depth <= iv.Base
	}
	return depth < iv.Base
}

// Intervals splits window at the markers that lie strictly inside it.
// Markers outside the window or duplicated are ignored.
func Intervals(window [2]float64, markers []float64) ([]Interval, error) {
	top, base := window[0], window[1]
	if !(top < base) {
		return nil, fmt.Errorf("%w: [%v, %v]", ErrInvalidWindow, top, base)
	}

	edges := []float64{top}
	sorted := append([]float64(nil), markers...)
	sort.Float64s(sorted)
	for _, m := range sorted {
		if m > top && m < base && m != edges[len(edges)-1] {
			edges = append(edges, m)
		}
	}
	edges = append(edges, base)

	out := make([]Interval, len(edges)-1)
	for i := range out {
		out[i] = Interval{
			Name: fmt.Sprintf("%g-%g", edges[i], edges[i+1]),
			Top:  edges[i],
			Base: edges[i+1],
		}
	}
	return out, nil
}

// Series is a named attribute sampled at the same depths as the summary's
// depth axis.
type Series struct {
	Name   string
	Values []float64
}

// Summary describes one attribute inside one interval. Statistics cover
// finite samples only; Skipped counts the NaN and infinite ones.
type Summary struct {
	Interval  Interval
	Attribute string
	Count     int
	Skipped   int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
}

// Summarize computes per-interval statistics for every series. Results are
// ordered by interval, then by series. An interval without finite samples
// reports NaN statistics.
func Summarize(depth []float64, series []Series, intervals []Interval) ([]Summary, error) {
	for _, s := range series {
		if len(s.Values) != len(depth) {
			return nil, fmt.Errorf("%w: %s has %d samples, depth has %d",
				ErrLengthMismatch, s.Name, len(s.Values), len(depth))
		}
	}

	out := make([]Summary, 0, len(intervals)*len(series))
	for k, iv := range intervals {
		last := k == len(intervals)-1
		for _, s := range series {
			sum := Summary{Interval: iv, Attribute: s.Name}
			var vals []float64
			for i, d := range depth {
				if !iv.Contains(d, last) {
					continue
				}
				v := s.Values[i]
				if math.IsNaN(v) || math.IsInf(v, 0) {
					sum.Skipped++
					continue
				}
				vals = append(vals, v)
			}
			describe(&sum, vals)
			out = append(out, sum)
		}
	}
	return out, nil
}

func describe(s *Summary, vals []float64) {
	s.Count = len(vals)
	switch len(vals) {
	case 0:
		s.Mean, s.StdDev, s.Min, s.Max = math.NaN(), math.NaN(), math.NaN(), math.NaN()
		return
	case 1:
		s.Mean, s.StdDev = vals[0], 0
	default:
		s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	}
	s.Min = floats.Min(vals)
	s.Max = floats.Max(vals)
}
