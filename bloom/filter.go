package bloom

import (
	"fmt"

	"golang.org/x/text/encoding"
)

// filterCore is the state and behaviour shared by both variants: the fixed
// config, the deriver, the occupancy array, the string encoding, and the
// added-element count. The variants embed it and keep the mutations that
// differ between them (add, clear, clone) on themselves.
type filterCore struct {
	cfg     Config
	deriver *Deriver
	store   *bitStore
	enc     encoding.Encoding
	added   uint64
}

func newFilterCore(cfg Config, opts []Option) (filterCore, error) {
	if err := cfg.check(); err != nil {
		return filterCore{}, err
	}
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	deriver, err := NewDeriver(o.Algorithm)
	if err != nil {
		return filterCore{}, err
	}
	return filterCore{
		cfg:     cfg,
		deriver: deriver,
		store:   newBitStore(cfg.BitCount),
		enc:     o.Encoding,
	}, nil
}

func (c *filterCore) slots(data []byte) []uint32 {
	return c.deriver.Slots(data, c.cfg.HashCount, c.cfg.BitCount)
}

func (c *filterCore) cloneCore() filterCore {
	return filterCore{
		cfg:     c.cfg,
		deriver: c.deriver.clone(),
		store:   c.store.clone(),
		enc:     c.enc,
		added:   c.added,
	}
}

func (c *filterCore) clearCore() {
	c.store.clearAll()
	c.added = 0
}

// Contains reports "maybe present" for data. A false return means data is
// definitely not present.
func (c *filterCore) Contains(data []byte) bool {
	return c.store.testAll(c.slots(data))
}

// ContainsString reports Contains for the canonical byte rendering of s.
func (c *filterCore) ContainsString(s string) bool {
	return c.Contains(elementBytes(s, c.enc))
}

// ContainsAll reports whether every element is possibly present, stopping at
// the first definite absence.
func (c *filterCore) ContainsAll(elems ...[]byte) bool {
	for _, e := range elems {
		if !c.Contains(e) {
			return false
		}
	}
	return true
}

// ContainsAllStrings is ContainsAll over string elements.
func (c *filterCore) ContainsAllStrings(elems ...string) bool {
	for _, e := range elems {
		if !c.ContainsString(e) {
			return false
		}
	}
	return true
}

// GetBit returns the state of slot i.
func (c *filterCore) GetBit(i uint32) (bool, error) {
	return c.store.get(i)
}

// BitCount returns m, the size of the slot space.
func (c *filterCore) BitCount() uint32 { return c.cfg.BitCount }

// HashCount returns k, the number of slots derived per element.
func (c *filterCore) HashCount() uint32 { return c.cfg.HashCount }

// ExpectedElements returns the configured capacity n.
func (c *filterCore) ExpectedElements() uint64 { return c.cfg.ExpectedElements }

// Algorithm returns the digest algorithm backing slot derivation.
func (c *filterCore) Algorithm() string { return c.deriver.Algorithm() }

// AddedCount returns the number of add operations since construction or the
// last clear. Re-adding an element counts every time, and remove never
// lowers the count.
func (c *filterCore) AddedCount() uint64 { return c.added }

// FillRatio returns the fraction of set slots.
func (c *filterCore) FillRatio() float64 {
	return float64(c.store.setCount()) / float64(c.cfg.BitCount)
}

// ExpectedFalsePositiveProbability projects the false positive rate at the
// configured capacity ExpectedElements.
func (c *filterCore) ExpectedFalsePositiveProbability() float64 {
	return FalsePositiveProbability(c.cfg.BitCount, c.cfg.HashCount, c.cfg.ExpectedElements)
}

// CurrentFalsePositiveProbability projects the false positive rate at the
// live AddedCount.
func (c *filterCore) CurrentFalsePositiveProbability() float64 {
	return FalsePositiveProbability(c.cfg.BitCount, c.cfg.HashCount, c.added)
}

// FalsePositiveProbability projects the false positive rate at a hypothetical
// element count n.
func (c *filterCore) FalsePositiveProbability(n uint64) float64 {
	return FalsePositiveProbability(c.cfg.BitCount, c.cfg.HashCount, n)
}

// Filter is the plain Bloom filter. It never yields a false negative and does
// not support removal; see CountingFilter for that.
type Filter struct {
	filterCore
}

// New constructs a plain filter from cfg. Options select the digest algorithm
// and the string encoding.
func New(cfg Config, opts ...Option) (*Filter, error) {
	core, err := newFilterCore(cfg, opts)
	if err != nil {
		return nil, err
	}
	return &Filter{filterCore: core}, nil
}

// NewFrom constructs a filter adopting the given bit and hash counts and
// copying everything else from src: the expected element count, the digest
// algorithm and encoding (unless overridden by opts), the added count, and a
// deep copy of the overlapping slot prefix of src's occupancy array.
//
// When bitCount differs from src's, membership answers for elements added to
// src are not preserved: slot derivation depends on the bit count.
func NewFrom(bitCount uint32, hashCount uint32, src *Filter, opts ...Option) (*Filter, error) {
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
	return &Filter{filterCore: core}, nil
}

// Add inserts data, reporting whether any slot changed. A false return means
// data was possibly already present.
func (f *Filter) Add(data []byte) bool {
	novel := f.store.setAll(f.slots(data))
	f.added++
	return novel
}

// AddString inserts the canonical byte rendering of s.
func (f *Filter) AddString(s string) bool {
	return f.Add(elementBytes(s, f.enc))
}

// AddAll inserts every element, reporting whether any insert changed a slot.
func (f *Filter) AddAll(elems ...[]byte) bool {
	novel := false
	for _, e := range elems {
		if f.Add(e) {
			novel = true
		}
	}
	return novel
}

// AddAllStrings is AddAll over string elements.
func (f *Filter) AddAllStrings(elems ...string) bool {
	novel := false
	for _, e := range elems {
		if f.AddString(e) {
			novel = true
		}
	}
	return novel
}

// Clear resets every slot and the added-element count. The configuration is
// retained.
func (f *Filter) Clear() {
	f.clearCore()
}

// Clone returns an independent deep copy.
func (f *Filter) Clone() *Filter {
	return &Filter{filterCore: f.cloneCore()}
}

// String summarizes the configuration and live state, including both
// probability projections: efpp at the configured capacity and fpp at the
// live added count.
func (f *Filter) String() string {
	return fmt.Sprintf("bloom.Filter{m=%d k=%d n=%d added=%d alg=%s efpp=%.6g fpp=%.6g}",
		f.cfg.BitCount, f.cfg.HashCount, f.cfg.ExpectedElements, f.added,
		f.Algorithm(), f.ExpectedFalsePositiveProbability(), f.CurrentFalsePositiveProbability())
}
