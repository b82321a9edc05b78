package scoring

// DegenerateValue is what Normalize returns when every value in the
// reference population is identical. 1.0 means "best on this dimension" for
// direct terms and "worst" for inverted ones (cost, CO2), so an attribute
// nobody differs on shifts every candidate equally and cannot reorder them.
const DegenerateValue = 1.0

// Range is the min and max of a reference population.
type Range struct {
	Min float64
	Max float64
}

// RangeOf computes the range of values. The zero Range is returned for an
// empty population.
func RangeOf(values []float64) Range {
	if len(values) == 0 {
		return Range{}
	}
	r := Range{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r
}

// Degenerate reports whether the population has zero spread.
func (r Range) Degenerate() bool {
	return r.Max == r.Min
}

// Normalize min-max scales v into r. Values outside r are clamped to [0,1].
func Normalize(v float64, r Range) float64 {
	if r.Degenerate() {
		return DegenerateValue
	}
	return clamp((v-r.Min)/(r.Max-r.Min), 0, 1)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
