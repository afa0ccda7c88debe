package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriverDeterministic(t *testing.T) {
	a, err := NewDeriver("")
	require.NoError(t, err)
	b, err := NewDeriver(AlgMD5)
	require.NoError(t, err)

	data := []byte("hello")
	require.Equal(t, a.HashValues(data, 8), b.HashValues(data, 8))
	require.Equal(t, a.Slots(data, 8, 462), b.Slots(data, 8, 462))
}

func TestDeriverPrefixStability(t *testing.T) {
	d, err := NewDeriver(AlgMD5)
	require.NoError(t, err)

	// md5 yields 4 values per round; k=12 spans three salted rounds.
	data := []byte("hello")
	v4 := d.HashValues(data, 4)
	v12 := d.HashValues(data, 12)
	require.Len(t, v4, 4)
	require.Len(t, v12, 12)
	require.Equal(t, v4, v12[:4])

	// Values from distinct rounds differ.
	require.NotEqual(t, v12[0:4], v12[4:8])
}

func TestDeriverDataSensitivity(t *testing.T) {
	d, err := NewDeriver(AlgSHA256)
	require.NoError(t, err)
	require.NotEqual(t, d.HashValues([]byte("abc"), 8), d.HashValues([]byte("abd"), 8))
}

func TestDeriverAllEnginesSatisfyK(t *testing.T) {
	for _, alg := range Algorithms() {
		d, err := NewDeriver(alg)
		require.NoError(t, err, alg)
		require.Len(t, d.HashValues([]byte("abc"), 19), 19, alg)
	}
}

func TestDeriverSlotsInRange(t *testing.T) {
	d, err := NewDeriver(AlgSHA256)
	require.NoError(t, err)
	data := []byte("raft is the crabgrass of consensus")
	for _, m := range []uint32{1, 7, 462, 1 << 20} {
		for _, j := range d.Slots(data, 16, m) {
			require.Less(t, j, m)
		}
	}
}

func TestDeriverEdgeInputs(t *testing.T) {
	d, err := NewDeriver(AlgMD5)
	require.NoError(t, err)

	require.Empty(t, d.HashValues([]byte("x"), 0))
	require.Empty(t, d.Slots([]byte("x"), 0, 64))

	// nil and empty elements derive identically.
	require.Equal(t, d.HashValues(nil, 3), d.HashValues([]byte{}, 3))
}
