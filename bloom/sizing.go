package bloom

import "math"

// OptimalHashCount returns the hash count matching a target false positive
// rate:
//
//	k = ceil(-log2(p))
//
// The caller is responsible for ensuring 0 < p < 1. ConfigFromFalsePositiveRate
// checks this condition.
func OptimalHashCount(p float64) uint32 {
	return uint32(math.Ceil(-math.Log2(p)))
}

// OptimalBitCount returns the bit count that makes k hashes optimal for n
// elements:
//
//	m = ceil(k*n / ln 2)
func OptimalBitCount(k uint32, n uint64) uint64 {
	return ceilBitCount(float64(k) * float64(n) / math.Ln2)
}

// BitCountForBitsPerElement returns ceil(bitsPerElement * n).
func BitCountForBitsPerElement(bitsPerElement float64, n uint64) uint64 {
	return ceilBitCount(bitsPerElement * float64(n))
}

// BitCountSafeCast returns m as uint32, or 0 if it is not safe to downcast.
func BitCountSafeCast(m64 uint64) uint32 {
	if m64 == 0 || m64 > uint64(^uint32(0)) {
		return 0
	}
	return uint32(m64)
}

// ceilBitCount converts a real-valued bit requirement to uint64. Requirements
// beyond the supported uint32 slot range clamp to a value BitCountSafeCast
// rejects.
func ceilBitCount(f float64) uint64 {
	f = math.Ceil(f)
	if f <= 0 {
		return 0
	}
	if f >= float64(uint64(^uint32(0))+1) {
		return uint64(^uint32(0)) + 1
	}
	return uint64(f)
}
