package utils

import "math"

// Float32ToInt16 quantizes a normalized sample to PCM16. Values are clamped to
// [-1, 1] and scaled by 32768, so Int16ToFloat32 round trips within 1/32768.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := math.Round(float64(x) * 32768.0)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}

// Int16ToFloat32 normalizes a PCM16 sample to [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return ClampUnit(float32(v) / 32768.0)
}

// ClampUnit clamps x into [-1, 1]. NaN becomes 0.
func ClampUnit(x float32) float32 {
	switch {
	case x != x:
		return 0
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}
