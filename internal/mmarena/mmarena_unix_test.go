//go:build unix

package mmarena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_Map_ReadWrite verifies that a mapped region is zeroed, writable, and
// the requested length.
func Test_Map_ReadWrite(t *testing.T) {
	data, cleanup, err := Map(8192)
	require.NoError(t, err)
	require.Len(t, data, 8192)

	require.Zero(t, data[0])
	require.Zero(t, data[8191])

	data[0] = 0xAA
	data[8191] = 0xBB
	require.Equal(t, byte(0xAA), data[0])
	require.Equal(t, byte(0xBB), data[8191])

	require.NoError(t, cleanup())
}

// Test_Map_DoubleCleanup verifies that unmapping twice is a no-op, matching
// the cleanup contract.
func Test_Map_DoubleCleanup(t *testing.T) {
	_, cleanup, err := Map(4096)
	require.NoError(t, err)
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())
}

// Test_Map_InvalidSize verifies that non-positive sizes are rejected.
func Test_Map_InvalidSize(t *testing.T) {
	_, _, err := Map(0)
	require.Error(t, err)
	_, _, err = Map(-1)
	require.Error(t, err)
}
