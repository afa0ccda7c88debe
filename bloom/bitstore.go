package bloom

import "github.com/bits-and-blooms/bitset"

// bitStore holds the m-slot occupancy array. It is a thin layer over
// bitset.BitSet pinning the slot-range checks and the novelty signal the
// filters need. Mutations are unsynchronized.
type bitStore struct {
	bits *bitset.BitSet
	m    uint32
}

func newBitStore(m uint32) *bitStore {
	return &bitStore{bits: bitset.New(uint(m)), m: m}
}

// setAll sets every slot, reporting whether any slot was newly set.
func (s *bitStore) setAll(slots []uint32) bool {
	novel := false
	for _, j := range slots {
		if !s.bits.Test(uint(j)) {
			s.bits.Set(uint(j))
			novel = true
		}
	}
	return novel
}

// testAll reports whether every slot is set.
func (s *bitStore) testAll(slots []uint32) bool {
	for _, j := range slots {
		if !s.bits.Test(uint(j)) {
			return false
		}
	}
	return true
}

func (s *bitStore) set(j uint32)   { s.bits.Set(uint(j)) }
func (s *bitStore) unset(j uint32) { s.bits.Clear(uint(j)) }

// get returns the state of slot i, or ErrIndexOutOfRange for i >= m.
func (s *bitStore) get(i uint32) (bool, error) {
	if i >= s.m {
		return false, ErrIndexOutOfRange
	}
	return s.bits.Test(uint(i)), nil
}

func (s *bitStore) clearAll() { s.bits.ClearAll() }

// setCount returns the number of set slots.
func (s *bitStore) setCount() uint { return s.bits.Count() }

func (s *bitStore) clone() *bitStore {
	return &bitStore{bits: s.bits.Clone(), m: s.m}
}

// copyInto copies the overlapping slot prefix of s into dst. Slots at or
// beyond dst's range are dropped.
func (s *bitStore) copyInto(dst *bitStore) {
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		if i >= uint(dst.m) {
			break
		}
		dst.bits.Set(i)
	}
}
