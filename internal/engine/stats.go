package engine

import (
	"encoding/json"
	"math"
	"sort"
)

// Stat is a mean over zero or more values. A Stat over an empty set is
// "no data": it marshals with a null value, never NaN, so renderers can
// show an explicit empty state instead of crashing on undefined numbers.
type Stat struct {
	Value float64
	N     int
}

// Valid reports whether the Stat was computed from at least one value.
func (s Stat) Valid() bool { return s.N > 0 }

func (s Stat) MarshalJSON() ([]byte, error) {
	out := struct {
		Value *float64 `json:"value"`
		N     int      `json:"n"`
	}{N: s.N}
	if s.N > 0 {
		v := RoundTo2(s.Value)
		out.Value = &v
	}
	return json.Marshal(out)
}

// MeanOf computes the mean of a slice, degrading to "no data" when empty.
func MeanOf(vals []float64) Stat {
	if len(vals) == 0 {
		return Stat{}
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return Stat{Value: sum / float64(len(vals)), N: len(vals)}
}

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BoxStats is the five-number summary behind a box plot.
type BoxStats struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	N      int     `json:"n"`
}

// NewBoxStats computes the five-number summary with linear interpolation
// between order statistics.
func NewBoxStats(vals []float64) BoxStats {
	if len(vals) == 0 {
		return BoxStats{}
	}
	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	return BoxStats{
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
		N:      len(sorted),
	}
}

// quantile interpolates linearly at position p*(n-1) of a sorted slice.
func quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. ok is false when the coefficient is undefined (fewer than two
// points, or zero variance in either series).
func pearson(x, y []float64) (r float64, ok bool) {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0, false
	}
	return cov / math.Sqrt(varX*varY), true
}
