package baseflow

// LH is the two pass LH digital filter (Lyne & Hollick, 1979). The forward
// pass smooths the raw discharge, the backward pass smooths the forward
// result again in reverse. Every downstream filter seeds from its output.
func LH(q []float64, beta float64) []float64 {
	n := len(q)
	b := make([]float64, n)
	if n == 0 {
		return b
	}

	// first pass
	b[0] = q[0]
	for i := 0; i < n-1; i++ {
		b[i+1] = beta*b[i] + (1-beta)/2*(q[i]+q[i+1])
		b[i+1] = clampStep(b[i+1], q[i+1])
	}

	// second pass, the forward result is the reference series
	b1 := make([]float64, n)
	copy(b1, b)
	for i := n - 2; i >= 0; i-- {
		b[i] = beta*b[i+1] + (1-beta)/2*(b1[i+1]+b1[i])
		b[i] = clampStep(b[i], b1[i])
	}
	return b
}
