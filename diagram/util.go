// File: util.go
// Role: small shared helpers not tied to a single lifecycle file.
package diagram

import "math"

// normalize folds x into [0, 2*Pi).
func normalize(x float64) float64 {
	y := math.Mod(x, 2*math.Pi)
	if y < 0 {
		y += 2 * math.Pi
	}

	return y
}
