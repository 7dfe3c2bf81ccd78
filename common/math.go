package common

const (
	DesignHeight = 360
	BaseWidth    = 640
	BaseHeight   = DesignHeight
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
