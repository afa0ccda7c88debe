package bloom

import (
	"hash"
	"sync"
)

// Deriver turns element bytes into hash-derived 32-bit values and slot
// indexes. Each Deriver owns one digest engine; mu serializes the full
// multi-round derivation so concurrent callers never interleave engine state.
type Deriver struct {
	algorithm string
	newEngine func() hash.Hash
	engine    hash.Hash
	mu        sync.Mutex
}

// NewDeriver constructs a deriver over the named digest algorithm. The empty
// name selects DefaultAlgorithm. Unregistered names fail with
// ErrUnknownAlgorithm.
func NewDeriver(algorithm string) (*Deriver, error) {
	norm, factory, err := lookupAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}
	return &Deriver{algorithm: norm, newEngine: factory, engine: factory()}, nil
}

// Algorithm returns the normalized digest algorithm name.
func (d *Deriver) Algorithm() string { return d.algorithm }

// clone returns a deriver of the same algorithm with a fresh engine.
func (d *Deriver) clone() *Deriver {
	return &Deriver{algorithm: d.algorithm, newEngine: d.newEngine, engine: d.newEngine()}
}

// HashValues returns the k values derived from data.
//
// Round s digests the salt byte s mod 256 followed by data, and contributes
// the digest's consecutive 4-byte groups, folded big-endian, until k values
// exist. The sequence is deterministic for identical (data, k, algorithm),
// and a shorter derivation is always a prefix of a longer one.
func (d *Deriver) HashValues(data []byte, k uint32) []uint32 {
	if k == 0 {
		return nil
	}
	values := make([]uint32, 0, k)
	var salt [1]byte

	d.mu.Lock()
	defer d.mu.Unlock()
	for s := 0; uint32(len(values)) < k; s++ {
		salt[0] = byte(s)
		d.engine.Reset()
		d.engine.Write(salt[:])
		d.engine.Write(data)
		sum := d.engine.Sum(nil)
		for off := 0; off+4 <= len(sum) && uint32(len(values)) < k; off += 4 {
			values = append(values, readU32BE(sum[off:off+4]))
		}
	}
	return values
}

// Slots maps the k derived values onto slot indexes in [0, m).
//
// The caller is responsible for ensuring m > 0.
func (d *Deriver) Slots(data []byte, k uint32, m uint32) []uint32 {
	values := d.HashValues(data, k)
	for i, v := range values {
		values[i] = v % m
	}
	return values
}
