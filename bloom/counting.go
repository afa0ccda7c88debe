package bloom

import "fmt"

// CountingFilter extends Bloom membership with per-slot counters and
// element removal. The counters are co-indexed with the occupancy array and
// every mutation maintains the alignment invariant: a slot's bit is set
// exactly when its counter is nonzero.
//
// Removal is what the counters buy, and it comes at a cost the plain variant
// does not have: removing an element the filter only appeared to contain can
// clear slots genuine elements rely on, so false negatives become possible.
type CountingFilter struct {
	filterCore
	counters *counterStore
}

// NewCounting constructs a counting filter from cfg. Options select the
// digest algorithm and the string encoding.
func NewCounting(cfg Config, opts ...Option) (*CountingFilter, error) {
	core, err := newFilterCore(cfg, opts)
	if err != nil {
		return nil, err
	}
	return &CountingFilter{
		filterCore: core,
		counters:   newCounterStore(cfg.BitCount),
	}, nil
}

// NewCountingFrom constructs a counting filter adopting the given bit and
// hash counts and copying everything else from src, including deep copies of
// the overlapping prefix of both the occupancy array and the counters.
//
// When bitCount differs from src's, membership answers for elements added to
// src are not preserved: slot derivation depends on the bit count.
func NewCountingFrom(bitCount uint32, hashCount uint32, src *CountingFilter, opts ...Option) (*CountingFilter, error) {
	cfg := Config{
		BitCount:         bitCount,
		HashCount:        hashCount,
		ExpectedElements: src.cfg.ExpectedElements,
	}
	srcOpts := []Option{WithHashAlgorithm(src.Algorithm()), WithEncoding(src.enc)}
	core, err := newFilterCore(cfg, append(srcOpts, opts...))
	if err != nil {
		return nil, err
	}
	core.added = src.added
	src.store.copyInto(core.store)
	c := &CountingFilter{
		filterCore: core,
		counters:   newCounterStore(bitCount),
	}
	src.counters.copyInto(c.counters)
	return c, nil
}

// Add inserts data, raising the counter of each derived slot. The return is
// always true: under counting semantics an element is inserted again even
// when every slot is already occupied.
func (c *CountingFilter) Add(data []byte) bool {
	for _, j := range c.slots(data) {
		c.store.set(j)
		c.counters.increment(j)
	}
	c.added++
	return true
}

// AddString inserts the canonical byte rendering of s.
func (c *CountingFilter) AddString(s string) bool {
	return c.Add(elementBytes(s, c.enc))
}

// AddAll inserts every element.
func (c *CountingFilter) AddAll(elems ...[]byte) bool {
	for _, e := range elems {
		c.Add(e)
	}
	return true
}

// AddAllStrings is AddAll over string elements.
func (c *CountingFilter) AddAllStrings(elems ...string) bool {
	for _, e := range elems {
		c.AddString(e)
	}
	return true
}

// Count returns the smallest counter across data's derived slots: an estimate
// of how many times data was added. Zero means definitely never added (or
// fully removed). The estimate can exceed the true multiplicity when other
// elements share slots with data.
func (c *CountingFilter) Count(data []byte) uint8 {
	return c.counters.min(c.slots(data))
}

// CountString reports Count for the canonical byte rendering of s.
func (c *CountingFilter) CountString(s string) uint8 {
	return c.Count(elementBytes(s, c.enc))
}

// Remove deletes one prior insertion of data, lowering the counter of each
// derived slot and clearing slots whose counter reaches zero. When data is
// definitely not present nothing changes and the return is false.
//
// The added-element count is not lowered; it records add operations, not live
// content.
func (c *CountingFilter) Remove(data []byte) bool {
	slots := c.slots(data)
	if !c.store.testAll(slots) {
		return false
	}
	for _, j := range slots {
		if c.counters.decrement(j) {
			c.store.unset(j)
		}
	}
	return true
}

// RemoveString removes the canonical byte rendering of s.
func (c *CountingFilter) RemoveString(s string) bool {
	return c.Remove(elementBytes(s, c.enc))
}

// GetCount returns the counter at slot i.
func (c *CountingFilter) GetCount(i uint32) (uint8, error) {
	return c.counters.get(i)
}

// Clear resets every slot, every counter, and the added-element count. The
// configuration is retained.
func (c *CountingFilter) Clear() {
	c.clearCore()
	c.counters.clearAll()
}

// Clone returns an independent deep copy.
func (c *CountingFilter) Clone() *CountingFilter {
	return &CountingFilter{
		filterCore: c.cloneCore(),
		counters:   c.counters.clone(),
	}
}

// String summarizes the configuration and live state, including both
// probability projections: efpp at the configured capacity and fpp at the
// live added count.
func (c *CountingFilter) String() string {
	return fmt.Sprintf("bloom.CountingFilter{m=%d k=%d n=%d added=%d alg=%s efpp=%.6g fpp=%.6g}",
		c.cfg.BitCount, c.cfg.HashCount, c.cfg.ExpectedElements, c.added,
		c.Algorithm(), c.ExpectedFalsePositiveProbability(), c.CurrentFalsePositiveProbability())
}
