package pricing

import "math"

// CostStep is the granularity every quoted cost is rounded to.
const CostStep = 50

// RoundHalfUp rounds to the nearest integer, halves toward +Inf.
func RoundHalfUp(x float64) int {
	// explicit conversion keeps the caller's product from being fused into the add
	return int(math.Floor(float64(x) + 0.5))
}

// RoundToStep rounds x half-up to the nearest multiple of step.
func RoundToStep(x float64, step int) int {
	return RoundHalfUp(x/float64(step)) * step
}
