// Package stats implements the slice statistics behind the effect size
// computation: arithmetic mean, sample variance, pooled standard deviation
// and Cohen's d.
package stats

import "math"

// Mean computes the arithmetic mean of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// Variance computes the sample variance of a slice (denominator n-1).
// Slices with fewer than two values have no spread to estimate and yield 0.
func Variance(x []float64) float64 {
	n := len(x)
	if n < 2 {
		return 0
	}
	mean := Mean(x)
	sum := 0.0
	for _, v := range x {
		diff := v - mean
		sum += diff * diff
	}
	return sum / float64(n-1)
}

// PooledSD computes the pooled standard deviation of two groups:
//
//	sqrt(((n_a-1)*var(a) + (n_b-1)*var(b)) / (n_a+n_b-2))
func PooledSD(a, b []float64) float64 {
	na := float64(len(a))
	nb := float64(len(b))
	pooled := ((na-1)*Variance(a) + (nb-1)*Variance(b)) / (na + nb - 2)
	return math.Sqrt(pooled)
}

// CohenD computes Cohen's d between a case and a control group:
// the difference of the group means divided by the pooled standard deviation.
//
// When the pooled standard deviation is zero or not finite (both groups
// constant, or too few samples for a variance estimate) the effect size is
// undefined; it is reported as 0 so the output never contains NaN or Inf.
func CohenD(a, b []float64) float64 {
	sd := PooledSD(a, b)
	if sd == 0 || math.IsNaN(sd) || math.IsInf(sd, 0) {
		return 0
	}
	return (Mean(a) - Mean(b)) / sd
}
