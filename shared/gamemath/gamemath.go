// Package gamemath holds the small scalar helpers shared by the gameplay
// systems.
package gamemath

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// Facing returns -1 when dx points left and 1 otherwise.
func Facing(dx float64) float64 {
	if dx < 0 {
		return -1
	}
	return 1
}

// Approach moves current toward target by the fraction t.
func Approach(current, target, t float64) float64 {
	return current + (target-current)*t
}

// ClampView keeps the center of a view with half-extent half inside
// [0, size]. Spans smaller than the view are centered.
func ClampView(center, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return Clamp(center, half, size-half)
}
