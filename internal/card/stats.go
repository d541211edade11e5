package card

import (
	"github.com/montanaflynn/stats"
)

// FieldStats summarizes one numeric field across a list. Cards whose value
// is absent or condition-dependent are left out, so Count can be smaller
// than the list.
type FieldStats struct {
	Count  int
	Min    int
	Max    int
	Total  int
	Mean   float64
	Median float64
	StdDev float64
}

// ListStats aggregates every numeric field plus the derived pitch/cost and
// power/defense spreads.
type ListStats struct {
	Fields map[string]FieldStats

	// PitchCostDifference is total pitch minus total cost: a rough measure
	// of whether the list generates or consumes resources.
	PitchCostDifference int
	// PowerDefenseDifference is total power minus total defense.
	PowerDefenseDifference int
}

// Statistics computes numeric summaries over the list. Fields with no
// integer-valued cards report a zero Count and zeroed aggregates.
func (l *List) Statistics() ListStats {
	out := ListStats{Fields: make(map[string]FieldStats, len(ValueFieldNames))}
	for _, name := range ValueFieldNames {
		spec := fields[name]
		var values []float64
		fs := FieldStats{}
		for _, c := range l.cards {
			n, ok := spec.val(c).Int()
			if !ok {
				continue
			}
			if fs.Count == 0 || n < fs.Min {
				fs.Min = n
			}
			if fs.Count == 0 || n > fs.Max {
				fs.Max = n
			}
			fs.Count++
			fs.Total += n
			values = append(values, float64(n))
		}
		if fs.Count > 0 {
			fs.Mean, _ = stats.Mean(values)
			fs.Median, _ = stats.Median(values)
			if fs.Count > 1 {
				fs.StdDev, _ = stats.StandardDeviationSample(values)
			}
		}
		out.Fields[name] = fs
	}
	out.PitchCostDifference = out.Fields["pitch"].Total - out.Fields["cost"].Total
	out.PowerDefenseDifference = out.Fields["power"].Total - out.Fields["defense"].Total
	return out
}
