package bloom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCounting(t *testing.T, m, k uint32, n uint64, opts ...Option) *CountingFilter {
	t.Helper()
	cfg, err := NewConfig(m, k, n)
	require.NoError(t, err)
	c, err := NewCounting(cfg, opts...)
	require.NoError(t, err)
	return c
}

func TestCountingAddCountRemove(t *testing.T) {
	c := mustCounting(t, 4096, 3, 100)

	require.Equal(t, uint8(0), c.CountString("hello"))
	require.True(t, c.AddString("hello"))
	require.True(t, c.AddString("hello"))
	require.Equal(t, uint8(2), c.CountString("hello"))
	require.True(t, c.ContainsString("hello"))

	// Removing a definitely-absent element mutates nothing.
	require.False(t, c.RemoveString("absent"))
	require.Equal(t, uint8(2), c.CountString("hello"))

	require.True(t, c.RemoveString("hello"))
	require.Equal(t, uint8(1), c.CountString("hello"))
	require.True(t, c.ContainsString("hello"))

	require.True(t, c.RemoveString("hello"))
	require.Equal(t, uint8(0), c.CountString("hello"))
	require.False(t, c.ContainsString("hello"))

	// The added count records add operations; removes never lower it.
	require.Equal(t, uint64(2), c.AddedCount())
}

func TestCountingBitCounterAlignment(t *testing.T) {
	c := mustCounting(t, 256, 3, 32)

	elems := make([]string, 20)
	for i := range elems {
		elems[i] = fmt.Sprintf("elem-%02d", i)
		c.AddString(elems[i])
	}
	for i := 0; i < 10; i++ {
		c.RemoveString(elems[i])
	}

	requireAligned := func() {
		for i := uint32(0); i < c.BitCount(); i++ {
			b, err := c.GetBit(i)
			require.NoError(t, err)
			n, err := c.GetCount(i)
			require.NoError(t, err)
			require.Equal(t, b, n > 0, "slot %d", i)
		}
	}
	requireAligned()

	c.Clear()
	requireAligned()
	require.Equal(t, uint64(0), c.AddedCount())
	require.Equal(t, 0.0, c.FillRatio())
}

func TestCountingSaturationPins(t *testing.T) {
	// A single slot forces every operation through the saturation path.
	c := mustCounting(t, 1, 1, 1)

	for i := 0; i < 300; i++ {
		c.Add([]byte("x"))
	}
	require.Equal(t, CounterMax, c.Count([]byte("x")))

	// A pinned counter is not lowered: the slot can no longer undercount.
	require.True(t, c.Remove([]byte("x")))
	require.Equal(t, CounterMax, c.Count([]byte("x")))
	require.True(t, c.Contains([]byte("x")))

	n, err := c.GetCount(0)
	require.NoError(t, err)
	require.Equal(t, CounterMax, n)

	c.Clear()
	require.Equal(t, uint8(0), c.Count([]byte("x")))
	require.False(t, c.Contains([]byte("x")))
}

func TestCountingSharedSlotFalseNegative(t *testing.T) {
	// With one slot every element collides, making the intrinsic hazard
	// deterministic: removing via a shared slot erases other elements.
	c := mustCounting(t, 1, 1, 2)

	c.Add([]byte("a"))
	c.Add([]byte("b"))
	require.True(t, c.Contains([]byte("a")))
	require.True(t, c.Contains([]byte("b")))

	require.True(t, c.Remove([]byte("a")))
	require.True(t, c.Contains([]byte("b")))

	// "a" still appears present through "b"'s slot, so a second remove
	// succeeds and takes "b" with it.
	require.True(t, c.Remove([]byte("a")))
	require.False(t, c.Contains([]byte("b")))
}

func TestCountingGetCountRange(t *testing.T) {
	c := mustCounting(t, 64, 2, 8)
	_, err := c.GetCount(64)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = c.GetBit(64)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCountingCloneIndependence(t *testing.T) {
	c := mustCounting(t, 4096, 3, 100)
	c.AddString("keep")
	c.AddString("keep")

	d := c.Clone()
	require.Equal(t, uint8(2), d.CountString("keep"))

	require.True(t, d.RemoveString("keep"))
	require.Equal(t, uint8(1), d.CountString("keep"))
	require.Equal(t, uint8(2), c.CountString("keep"))
}

func TestNewCountingFromCopiesCounters(t *testing.T) {
	c := mustCounting(t, 1024, 3, 100)
	c.AddString("carried")
	c.AddString("carried")

	d, err := NewCountingFrom(1024, 3, c)
	require.NoError(t, err)
	require.Equal(t, uint8(2), d.CountString("carried"))
	require.Equal(t, c.AddedCount(), d.AddedCount())

	require.True(t, d.RemoveString("carried"))
	require.Equal(t, uint8(2), c.CountString("carried"))

	_, err = NewCountingFrom(1024, 0, c)
	require.ErrorIs(t, err, ErrBadHashCount)
}

func TestNewCountingFromSmallerKeepsAlignment(t *testing.T) {
	c := mustCounting(t, 1024, 3, 100)
	for i := 0; i < 40; i++ {
		c.AddString(fmt.Sprintf("elem-%02d", i))
	}

	// Shrinking truncates both arrays to the overlapping prefix; the
	// surviving slots must keep the bit-iff-nonzero alignment.
	d, err := NewCountingFrom(256, 3, c)
	require.NoError(t, err)
	require.Equal(t, c.AddedCount(), d.AddedCount())

	for i := uint32(0); i < d.BitCount(); i++ {
		bit, err := d.GetBit(i)
		require.NoError(t, err)
		n, err := d.GetCount(i)
		require.NoError(t, err)
		require.Equal(t, bit, n != 0, "slot %d", i)

		src, err := c.GetCount(i)
		require.NoError(t, err)
		require.Equal(t, src, n, "slot %d", i)
	}
}

func TestCountingStringSummary(t *testing.T) {
	c := mustCounting(t, 512, 4, 50)
	c.AddString("one")

	s := c.String()
	require.Contains(t, s, "CountingFilter")
	require.Contains(t, s, "m=512")
	require.Contains(t, s, "k=4")
	require.Contains(t, s, "added=1")

	require.NotEqual(t, c.ExpectedFalsePositiveProbability(), c.CurrentFalsePositiveProbability())
	require.Contains(t, s, fmt.Sprintf("efpp=%.6g", c.ExpectedFalsePositiveProbability()))
	require.Contains(t, s, fmt.Sprintf(" fpp=%.6g", c.CurrentFalsePositiveProbability()))
}
