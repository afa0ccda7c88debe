package bloom

// counterStore holds the per-slot multiplicities of a counting filter,
// co-indexed with the bit store. The alignment invariant is that a slot's bit
// is set exactly when its counter is nonzero; the counting filter maintains
// it on every mutation.
type counterStore struct {
	counts []uint8
}

func newCounterStore(m uint32) *counterStore {
	return &counterStore{counts: make([]uint8, m)}
}

// increment raises the counter at slot j, saturating at CounterMax.
func (s *counterStore) increment(j uint32) {
	if s.counts[j] == CounterMax {
		return
	}
	s.counts[j]++
}

// decrement lowers the counter at slot j, reporting whether the slot is zero
// afterwards. A counter pinned at CounterMax is left unchanged.
func (s *counterStore) decrement(j uint32) bool {
	c := s.counts[j]
	if c == 0 || c == CounterMax {
		return c == 0
	}
	s.counts[j] = c - 1
	return s.counts[j] == 0
}

// min returns the smallest counter across slots.
func (s *counterStore) min(slots []uint32) uint8 {
	if len(slots) == 0 {
		return 0
	}
	lo := s.counts[slots[0]]
	for _, j := range slots[1:] {
		if s.counts[j] < lo {
			lo = s.counts[j]
		}
	}
	return lo
}

// get returns the counter at slot i, or ErrIndexOutOfRange for i >= m.
func (s *counterStore) get(i uint32) (uint8, error) {
	if uint64(i) >= uint64(len(s.counts)) {
		return 0, ErrIndexOutOfRange
	}
	return s.counts[i], nil
}

func (s *counterStore) clearAll() { clear(s.counts) }

func (s *counterStore) clone() *counterStore {
	counts := make([]uint8, len(s.counts))
	copy(counts, s.counts)
	return &counterStore{counts: counts}
}

// copyInto copies the overlapping slot prefix of s into dst.
func (s *counterStore) copyInto(dst *counterStore) {
	copy(dst.counts, s.counts)
}
