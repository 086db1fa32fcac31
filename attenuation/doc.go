// SPDX-License-Identifier: EPL-2.0

// Package attenuation computes the per-voice volume decay used by voice
// pools.
//
// A pool of n voices plays voice i at baseVolume * ratio^i. The ratio is
// chosen so that the geometric series of the n gains adds up to a loudness
// budget of 1/baseVolume:
//
//	1 + p + p^2 + ... + p^(n-1) = (1 - p^n) / (1 - p) = 1/baseVolume
//
// Solve finds p with a bounded Newton-Raphson iteration starting at 0.9. It
// never fails: after MaxIterations it hands back the last iterate, and
// Result.Converged tells whether the residual got below Tolerance.
//
// Budgets of 1 or less (baseVolume >= 1) have no root inside (0, 1). Ratio
// clamps whatever the solver produced into [MinRatio, MaxRatio] so pools
// always get a usable, non-increasing volume ladder:
//
//	r := attenuation.Ratio(4, 0.5) // ~0.5437
//	vols := attenuation.Volumes(4, 0.5, r)
//	// vols: 0.5, 0.272, 0.148, 0.080
package attenuation
