package bloomtesting

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/halfsieve/go-bloomset/bloom"
)

// GenerateElements returns count distinct string elements drawn from the
// seeded stream, so a fixed seed reproduces the same elements.
func (c *TestContext) GenerateElements(count int) []string {
	elems := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := uuid.NewRandomFromReader(c.rng)
		require.NoError(c.T, err)
		elems = append(elems, id.String())
	}
	return elems
}

// MeasureFalsePositiveRate adds members to f, then probes it with freshly
// generated elements and returns the observed false positive fraction. The
// probes are uuids like the members, so overlap does not happen in practice.
func (c *TestContext) MeasureFalsePositiveRate(f bloom.Membership, members []string, probes int) float64 {
	for _, m := range members {
		f.Add([]byte(m))
	}
	fp := 0
	for _, probe := range c.GenerateElements(probes) {
		if f.Contains([]byte(probe)) {
			fp++
		}
	}
	return float64(fp) / float64(probes)
}

// RequireCountInvariant asserts the bit and counter arrays of a counting
// filter stay aligned: a slot's bit is set exactly when its counter is
// nonzero.
func (c *TestContext) RequireCountInvariant(f *bloom.CountingFilter) {
	for i := uint32(0); i < f.BitCount(); i++ {
		bit, err := f.GetBit(i)
		require.NoError(c.T, err)
		n, err := f.GetCount(i)
		require.NoError(c.T, err)
		require.Equal(c.T, bit, n > 0, "slot %d", i)
	}
}
