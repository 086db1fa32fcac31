// SPDX-License-Identifier: EPL-2.0

package attenuation

import "math"

const (
	// InitialGuess is the Newton starting point.
	InitialGuess = 0.9
	// MaxIterations bounds the Newton loop.
	MaxIterations = 100
	// Tolerance is the residual below which the iteration stops.
	Tolerance = 1e-5

	// MinRatio and MaxRatio bound the ratio handed to voice pools.
	MinRatio = 1e-6
	MaxRatio = 1 - 1e-9
)

// Result is the outcome of a Solve call.
type Result struct {
	Ratio      float64
	Iterations int
	Converged  bool
}

// Solve returns p such that (1-p^n)/(1-p) = budget, or the best iterate it
// reached. For n <= 1 no attenuation applies and the ratio is 1.
func Solve(n int, budget float64) Result {
	if n <= 1 {
		return Result{Ratio: 1, Converged: true}
	}

	nf := float64(n)
	p := InitialGuess

	for i := range MaxIterations {
		f := GeometricSum(n, p) - budget
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Result{Ratio: p, Iterations: i}
		}
		if math.Abs(f) < Tolerance {
			return Result{Ratio: p, Iterations: i, Converged: true}
		}

		q := 1 - p
		d := (-nf*math.Pow(p, nf-1)*q + (1 - math.Pow(p, nf))) / (q * q)
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return Result{Ratio: p, Iterations: i}
		}

		p -= f / d
	}

	return Result{
		Ratio:      p,
		Iterations: MaxIterations,
		Converged:  math.Abs(GeometricSum(n, p)-budget) < Tolerance,
	}
}

// GeometricSum returns 1 + p + ... + p^(n-1) in closed form. At p == 1 the
// closed form is undefined and the sum is n.
func GeometricSum(n int, p float64) float64 {
	if n <= 0 {
		return 0
	}
	if p == 1 {
		return float64(n)
	}
	return (1 - math.Pow(p, float64(n))) / (1 - p)
}

// Ratio solves for a pool of n voices at baseVolume and clamps the result
// into [MinRatio, MaxRatio]. A single voice is never attenuated.
func Ratio(n int, baseVolume float64) float64 {
	if n <= 1 {
		return 1
	}

	r := Solve(n, 1/baseVolume).Ratio
	if math.IsNaN(r) {
		return MinRatio
	}

	return min(max(r, MinRatio), MaxRatio)
}

// Volumes returns the n gains baseVolume * ratio^i.
func Volumes(n int, baseVolume, ratio float64) []float64 {
	if n <= 0 {
		return nil
	}

	vols := make([]float64, n)
	for i := range vols {
		vols[i] = baseVolume * math.Pow(ratio, float64(i))
	}

	return vols
}
