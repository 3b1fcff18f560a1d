package statistics

import (
	"errors"
	gomath "math"
	"sort"

	"github.com/GriffinCanCode/calcshell/internal/providers/math/common"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyDataset is returned when a summary is requested for no values
var ErrEmptyDataset = errors.New("dataset must contain at least one number")

// Share is one value's percentage of the dataset total
type Share struct {
	Value   common.Value
	Percent float64 // rounded to 2 decimal places
	Bar     int     // floor(Percent / 2), never negative
}

// Summary holds the descriptive statistics of a dataset
type Summary struct {
	Values []common.Value // entry order
	Sorted []common.Value // ascending
	Count  int

	Sum     common.Value
	Average float64
	Mean    float64
	Median  float64
	Modes   []common.Value

	// Shares is empty and SharesDefined false when Sum is zero
	Shares        []Share
	SharesDefined bool
}

// StatsOps handles statistical operations using gonum
type StatsOps struct {
	*common.MathOps
}

// Describe computes the full summary of a non-empty dataset
func (s *StatsOps) Describe(dataset []common.Value) (Summary, error) {
	if len(dataset) == 0 {
		return Summary{}, ErrEmptyDataset
	}
	if err := s.ValidateValues(dataset, "dataset"); err != nil {
		return Summary{}, err
	}

	values := make([]common.Value, len(dataset))
	copy(values, dataset)

	sum := Sum(values)
	summary := Summary{
		Values:  values,
		Sorted:  Sorted(values),
		Count:   len(values),
		Sum:     sum,
		Average: sum.Float64() / float64(len(values)),
		Mean:    stat.Mean(common.Floats(values), nil),
		Modes:   Modes(values),
	}
	summary.Median = Median(summary.Sorted)

	if !sum.IsZero() {
		summary.Shares = Shares(values, sum)
		summary.SharesDefined = true
	}

	return summary, nil
}

// Sum totals the values, staying integral when every value is an int
func Sum(values []common.Value) common.Value {
	total := common.Int(0)
	for _, v := range values {
		total = common.Add(total, v)
	}
	return total
}

// Sorted returns an ascending copy; equal values keep entry order
func Sorted(values []common.Value) []common.Value {
	sorted := make([]common.Value, len(values))
	copy(sorted, values)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Float64() < sorted[j].Float64()
	})
	return sorted
}

// Median of an ascending slice; the mean of the two middle values for even counts
func Median(sorted []common.Value) float64 {
	n := len(sorted)
	if n == 0 {
		return gomath.NaN()
	}
	if n%2 == 1 {
		return sorted[n/2].Float64()
	}
	return (sorted[n/2-1].Float64() + sorted[n/2].Float64()) / 2
}

// Modes returns every value tied for the highest frequency, in order of
// first occurrence. Values count together only when exactly equal, so an
// int and a float meet only if the float holds that int precisely.
func Modes(values []common.Value) []common.Value {
	counts := make(map[modeKey]int, len(values))
	var order []common.Value

	for _, v := range values {
		key := keyOf(v)
		if counts[key] == 0 {
			order = append(order, v)
		}
		counts[key]++
	}

	maxFreq := 0
	for _, freq := range counts {
		if freq > maxFreq {
			maxFreq = freq
		}
	}

	modes := make([]common.Value, 0, len(order))
	for _, v := range order {
		if counts[keyOf(v)] == maxFreq {
			modes = append(modes, v)
		}
	}
	return modes
}

// modeKey identifies a value exactly. Integral floats within int64 range use
// the integer form so that 2 and 2.0 share a key.
type modeKey struct {
	integral bool
	i        int64
	f        float64
}

func keyOf(v common.Value) modeKey {
	if i, ok := v.Int64(); ok {
		return modeKey{integral: true, i: i}
	}

	f := v.Float64()
	if f == gomath.Trunc(f) && f >= -(1<<63) && f < 1<<63 {
		return modeKey{integral: true, i: int64(f)}
	}
	return modeKey{f: f}
}

// Shares computes each value's percentage of a non-zero total
func Shares(values []common.Value, total common.Value) []Share {
	sum := total.Float64()
	shares := make([]Share, 0, len(values))
	for _, v := range values {
		pct := scalar.Round((v.Float64()/sum)*100, 2)
		bar := int(gomath.Floor(pct / 2))
		if bar < 0 {
			bar = 0
		}
		shares = append(shares, Share{Value: v, Percent: pct, Bar: bar})
	}
	return shares
}
