package bloom

import "math"

// FalsePositiveProbability returns the standard uniform-hashing estimate of
// the false positive rate of an m-bit, k-hash filter holding n elements:
//
//	(1 - e^(-k*n/m))^k
//
// n = 0 yields exactly 0. The caller is responsible for ensuring m > 0 and
// k > 0; every constructed Config satisfies both.
func FalsePositiveProbability(m uint32, k uint32, n uint64) float64 {
	if n == 0 {
		return 0
	}
	inner := 1 - math.Exp(-float64(k)*float64(n)/float64(m))
	return math.Pow(inner, float64(k))
}
