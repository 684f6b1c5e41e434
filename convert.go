package bitgen

// 1 / 2^53
const doubleUnit = 1.0 / 9007199254740992.0

// Uint64ToDouble maps the top 53 bits of v onto [0, 1).
func Uint64ToDouble(v uint64) float64 {
	return float64(v>>11) * doubleUnit
}
