package utils

import "math"

// Float32ToInt16 clamps x to [-1, 1] and scales to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Int16ToFloat32 scales a 16-bit PCM sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}

// DBToLinear converts decibels to a linear amplitude factor.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}
