package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorAllocateSequential(t *testing.T) {
	a, err := NewAllocator(0x200000, 0x1FFFFF)
	require.NoError(t, err)

	first, err := a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x200000), first)

	second, err := a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x200001), second)

	assert.True(t, a.InUse(first))
	assert.True(t, a.InUse(second))
}

func TestAllocatorClaimClientChosenXID(t *testing.T) {
	a, err := NewAllocator(0x200000, 0x1FFFFF)
	require.NoError(t, err)

	require.NoError(t, a.Claim(0x200042))
	assert.True(t, a.InUse(0x200042))

	// Claiming the same xid twice is a BadIDChoice.
	assert.Error(t, a.Claim(0x200042))
}

func TestAllocatorClaimOutOfRange(t *testing.T) {
	a, err := NewAllocator(0x200000, 0x1FFFFF)
	require.NoError(t, err)

	assert.Error(t, a.Claim(0x400000))
	assert.False(t, a.Owns(0x400000))
}

func TestAllocatorReleaseFreesIndex(t *testing.T) {
	a, err := NewAllocator(0x200000, 0x1FFFFF)
	require.NoError(t, err)

	xid, err := a.Allocate()
	require.NoError(t, err)
	before := a.FreeCount()

	require.NoError(t, a.Release(xid))
	assert.Equal(t, before+1, a.FreeCount())
	assert.False(t, a.InUse(xid))

	// Releasing an already-free xid is an error.
	assert.Error(t, a.Release(xid))
}

func TestAllocatorExhaustion(t *testing.T) {
	a, err := NewAllocator(0, 1) // only 2 ids available
	require.NoError(t, err)

	_, err = a.Allocate()
	require.NoError(t, err)
	_, err = a.Allocate()
	require.NoError(t, err)

	_, err = a.Allocate()
	assert.Error(t, err)
}

func TestAllocatorInvalidMask(t *testing.T) {
	_, err := NewAllocator(0, 0)
	assert.Error(t, err)

	_, err = NewAllocator(1, 0x1FFFFF) // base overlaps mask
	assert.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(0, 0x1FFFFF, 0x100000, 0x1FFFFF))
	assert.False(t, Overlaps(0, 0x1FFFFF, 0x200000, 0x1FFFFF))
}
