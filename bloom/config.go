package bloom

import "fmt"

// NewConfig builds a config from explicit bit and hash counts.
func NewConfig(bitCount uint32, hashCount uint32, expectedElements uint64) (Config, error) {
	cfg := Config{
		BitCount:         bitCount,
		HashCount:        hashCount,
		ExpectedElements: expectedElements,
	}
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ConfigFromBitsPerElement sizes the bit array as ceil(bitsPerElement * n).
func ConfigFromBitsPerElement(bitsPerElement float64, expectedElements uint64, hashCount uint32) (Config, error) {
	if expectedElements == 0 {
		return Config{}, ErrBadExpectedElements
	}
	if bitsPerElement <= 0 {
		return Config{}, fmt.Errorf("%w: bitsPerElement %v", ErrBadBitCount, bitsPerElement)
	}
	m := BitCountSafeCast(BitCountForBitsPerElement(bitsPerElement, expectedElements))
	if m == 0 {
		return Config{}, ErrBitCountOverflow
	}
	return NewConfig(m, hashCount, expectedElements)
}

// ConfigFromFalsePositiveRate derives both counts from a target false
// positive rate, using the closed forms
//
//	k = ceil(-log2(p))
//	m = ceil(k*n / ln 2)
//
// The realized ExpectedFalsePositiveProbability of the resulting filter is at
// or below the target, within the rounding the ceilings introduce.
func ConfigFromFalsePositiveRate(expectedElements uint64, falsePositiveRate float64) (Config, error) {
	if expectedElements == 0 {
		return Config{}, ErrBadExpectedElements
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		return Config{}, fmt.Errorf("%w: %v", ErrBadFalsePositiveRate, falsePositiveRate)
	}
	k := OptimalHashCount(falsePositiveRate)
	m := BitCountSafeCast(OptimalBitCount(k, expectedElements))
	if m == 0 {
		return Config{}, ErrBitCountOverflow
	}
	return NewConfig(m, k, expectedElements)
}

func (c Config) check() error {
	if c.BitCount == 0 {
		return ErrBadBitCount
	}
	if c.HashCount == 0 {
		return ErrBadHashCount
	}
	if c.ExpectedElements == 0 {
		return ErrBadExpectedElements
	}
	return nil
}
