// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate evaluates the Catmull-Rom spline through four consecutive
// samples at fraction t of the way from y1 to y2 (0 <= t <= 1).
func CubicInterpolate(y0, y1, y2, y3, t float32) float32 {
	a := 0.5 * (-y0 + 3*y1 - 3*y2 + y3)
	b := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	c := 0.5 * (y2 - y0)

	return ((a*t+b)*t+c)*t + y1
}
