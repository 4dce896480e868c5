package baseflow

// The recursive filters below are first-order IIR recursions over the raw
// discharge values. Each one seeds from the LH first-pass estimate and
// clamps every step so baseflow never exceeds total flow at that instant.
// Recession coefficients outside (0,1) are a caller error and are not
// validated here, NaN/Inf propagate through the arithmetic.

// Chapman filter (Chapman, 1991). a is the recession coefficient.
func Chapman(q, bLH []float64, a float64) []float64 {
	n := len(q)
	b := make([]float64, n)
	if n == 0 {
		return b
	}
	b[0] = bLH[0]
	for i := 0; i < n-1; i++ {
		b[i+1] = (3*a-1)/(3-a)*b[i] + (1-a)/(3-a)*(q[i+1]+q[i])
		b[i+1] = clampStep(b[i+1], q[i+1])
	}
	return b
}

// ChapmanMaxwell filter (Chapman & Maxwell, 1996).
func ChapmanMaxwell(q, bLH []float64, a float64) []float64 {
	n := len(q)
	b := make([]float64, n)
	if n == 0 {
		return b
	}
	b[0] = bLH[0]
	for i := 0; i < n-1; i++ {
		b[i+1] = a/(2-a)*b[i] + (1-a)/(2-a)*q[i+1]
		b[i+1] = clampStep(b[i+1], q[i+1])
	}
	return b
}

// Eckhardt filter (Eckhardt, 2005). bfiMax is the maximum baseflow index
// for the catchment.
func Eckhardt(q, bLH []float64, a, bfiMax float64) []float64 {
	n := len(q)
	b := make([]float64, n)
	if n == 0 {
		return b
	}
	b[0] = bLH[0]
	for i := 0; i < n-1; i++ {
		b[i+1] = ((1-bfiMax)*a*b[i] + (1-a)*bfiMax*q[i+1]) / (1 - a*bfiMax)
		b[i+1] = clampStep(b[i+1], q[i+1])
	}
	return b
}
