package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_AlignUp_Properties verifies the three alignment properties for a grid
// of addresses and power-of-two alignments: the result is a multiple of the
// alignment, never smaller than the address, and less than address + align.
func Test_AlignUp_Properties(t *testing.T) {
	aligns := []uint64{1, 2, 4, 8, 16, 64, 4096}
	addrs := []uint64{0, 1, 2, 7, 8, 9, 15, 100, 4095, 4096, 4097, 1 << 20}

	for _, align := range aligns {
		for _, addr := range addrs {
			got := AlignUp(addr, align)
			require.Zero(t, got%align, "AlignUp(%d, %d) not a multiple", addr, align)
			require.GreaterOrEqual(t, got, addr, "AlignUp(%d, %d) went backward", addr, align)
			require.Less(t, got, addr+align, "AlignUp(%d, %d) overshot", addr, align)
		}
	}
}

// Test_AlignUp_Identity verifies that already-aligned addresses are returned
// unchanged.
func Test_AlignUp_Identity(t *testing.T) {
	require.EqualValues(t, 0, AlignUp(0, 8))
	require.EqualValues(t, 8, AlignUp(8, 8))
	require.EqualValues(t, 4096, AlignUp(4096, 4096))
}

// Test_Align8 verifies the node-alignment shorthand against AlignUp.
func Test_Align8(t *testing.T) {
	for _, n := range []uint64{0, 1, 7, 8, 9, 16, 17, 1023} {
		require.Equal(t, AlignUp(n, NodeAlign), Align8(n))
	}
}

// Test_IsPowerOfTwo covers the edges: zero is not a power of two, one is.
func Test_IsPowerOfTwo(t *testing.T) {
	require.False(t, IsPowerOfTwo(0))
	require.True(t, IsPowerOfTwo(1))
	require.True(t, IsPowerOfTwo(2))
	require.False(t, IsPowerOfTwo(3))
	require.True(t, IsPowerOfTwo(1<<32))
	require.False(t, IsPowerOfTwo(1<<32+1))
}

// Test_NodeEncoding verifies that a node's two fields occupy exactly
// NodeSize bytes at the documented offsets.
func Test_NodeEncoding(t *testing.T) {
	buf := make([]byte, NodeSize)
	PutU64(buf, 0, 4096)
	PutU64(buf, NodeNextOffset, NilOffset)

	require.EqualValues(t, 4096, ReadU64(buf, 0))
	require.Equal(t, NilOffset, ReadU64(buf, NodeNextOffset))
}
