package scoring

// paretoPoint is one candidate in (cost, co2, suitability) space.
type paretoPoint struct {
	cost        float64 // lower is better
	co2         float64 // lower is better
	suitability float64 // higher is better
}

// paretoFrontier returns, per point, whether no other point dominates it.
// O(n^2) over the candidate set.
func paretoFrontier(points []paretoPoint) []bool {
	out := make([]bool, len(points))
	for i := range points {
		dominated := false
		for j := range points {
			if i == j {
				continue
			}
			if dominates(points[j], points[i]) {
				dominated = true
				break
			}
		}
		out[i] = !dominated
	}
	return out
}

// dominates returns true if a is at least as good as b on every dimension
// and strictly better on one.
func dominates(a, b paretoPoint) bool {
	if a.cost > b.cost || a.co2 > b.co2 || a.suitability < b.suitability {
		return false
	}
	return a.cost < b.cost || a.co2 < b.co2 || a.suitability > b.suitability
}
