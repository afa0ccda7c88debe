package bloom

import "errors"

// CounterMax is the saturation bound of a counting slot. A counter that
// reaches the bound is pinned there: further adds do not raise it and remove
// does not lower it, so a saturated slot can never undercount the elements
// still mapped to it.
const CounterMax = ^uint8(0)

var (
	ErrBadBitCount          = errors.New("bloom: bit count invalid")
	ErrBadHashCount         = errors.New("bloom: hash count invalid")
	ErrBadExpectedElements  = errors.New("bloom: expected element count invalid")
	ErrBadFalsePositiveRate = errors.New("bloom: false positive rate must be in (0,1)")
	ErrUnknownAlgorithm     = errors.New("bloom: unknown digest algorithm")
	ErrIndexOutOfRange      = errors.New("bloom: slot index out of range")

	ErrBitCountOverflow = errors.New("bloom: bit count overflows supported range")
)

// Config fixes the shape of a filter: the slot count m, the hash count k, and
// the expected element count n that sizing and probability projections are
// made against. A filter keeps its own copy; the values never change after
// construction.
type Config struct {
	BitCount         uint32
	HashCount        uint32
	ExpectedElements uint64
}

// Membership is the capability shared by both filter variants.
//
// Add reports whether the insert changed any slot. Contains reports "maybe
// present"; false is definite absence.
type Membership interface {
	Add(data []byte) bool
	Contains(data []byte) bool
	Clear()
}

// Remover is the extended capability of the counting variant.
type Remover interface {
	Membership
	Count(data []byte) uint8
	Remove(data []byte) bool
}

var (
	_ Membership = (*Filter)(nil)
	_ Membership = (*CountingFilter)(nil)
	_ Remover    = (*CountingFilter)(nil)
)
