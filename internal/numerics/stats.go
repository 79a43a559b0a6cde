package numerics

import "math"

// Sum returns the arithmetic sum of xs. The empty sequence sums to exactly 0.
func Sum(xs []float64) float64 {
	var total float64
	for _, v := range xs {
		total += v
	}
	return total
}

// PopulationStdDev returns the population standard deviation of xs
// (divisor N, not N-1). The statistic is undefined for fewer than two
// samples and returns NaN in that case; callers surface that as the NaN
// sentinel rather than a generic validation failure.
func PopulationStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	mean := Sum(xs) / float64(len(xs))
	var sq float64
	for _, v := range xs {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(xs)))
}
