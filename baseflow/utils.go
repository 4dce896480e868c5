package baseflow

// clampStep keeps a filtered baseflow value inside [0, max(q, 0)].
// Baseflow can never exceed total flow at that instant, and transiently
// negative discharge values contribute zero baseflow.
func clampStep(b, q float64) float64 {
	if b > q {
		b = q
	}
	if b < 0 {
		b = 0
	}
	return b
}

func minOf(values []float64) float64 {
	res := values[0]
	for _, v := range values[1:] {
		if v < res {
			res = v
		}
	}
	return res
}
