package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowResource(xid uint32, owner ClientID) *Resource {
	return &Resource{
		XID:   xid,
		Owner: owner,
		Kind:  KindWindow,
		Window: &Window{
			XID:              xid,
			ClientEventMasks: make(map[ClientID]uint32),
			Properties:       make(map[uint32]*Property),
		},
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(windowResource(1, 10)))

	res, err := r.Lookup(1, KindWindow)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), res.XID)
	assert.Equal(t, ClientID(10), res.Owner)
}

func TestRegistryDuplicateXIDRejected(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(windowResource(1, 10)))
	assert.Error(t, r.Register(windowResource(1, 11)))
}

func TestRegistryLookupMismatch(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(windowResource(1, 10)))

	_, err := r.Lookup(1, KindPixmap)
	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, KindWindow, mismatch.Actual)
}

func TestRegistryLookupNotFound(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup(99, KindAny)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRegistryLookupDrawableAcceptsWindowOrPixmap(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(windowResource(1, 10)))
	require.NoError(t, r.Register(&Resource{XID: 2, Owner: 10, Kind: KindPixmap, Pixmap: &Pixmap{XID: 2}}))

	_, err := r.Lookup(1, KindDrawable)
	assert.NoError(t, err)
	_, err = r.Lookup(2, KindDrawable)
	assert.NoError(t, err)

	require.NoError(t, r.Register(&Resource{XID: 3, Owner: 10, Kind: KindGC, GC: &GraphicsContext{XID: 3}}))
	_, err = r.Lookup(3, KindDrawable)
	assert.Error(t, err)
}

func TestRegistryUnregisterBlockedByDependents(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Resource{XID: 1, Owner: 10, Kind: KindPixmap, Pixmap: &Pixmap{XID: 1}}))
	require.NoError(t, r.Register(&Resource{XID: 2, Owner: 10, Kind: KindGC, GC: &GraphicsContext{XID: 2, Tile: 1}}))
	r.AddDependency(2, 1)

	err := r.Unregister(1)
	var depErr *DependentsError
	require.ErrorAs(t, err, &depErr)
	assert.Contains(t, depErr.Dependents, uint32(2))

	require.NoError(t, r.Unregister(2))
	assert.NoError(t, r.Unregister(1))
}

func TestRegistryClientResourcesAndCountByKind(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(windowResource(1, 10)))
	require.NoError(t, r.Register(windowResource(2, 10)))
	require.NoError(t, r.Register(&Resource{XID: 3, Owner: 10, Kind: KindPixmap, Pixmap: &Pixmap{XID: 3}}))
	require.NoError(t, r.Register(windowResource(4, 20)))

	xids := r.ClientResources(10)
	assert.ElementsMatch(t, []uint32{1, 2, 3}, xids)

	assert.Equal(t, 2, r.CountByKind(10, KindWindow))
	assert.Equal(t, 1, r.CountByKind(10, KindPixmap))
	assert.Equal(t, 1, r.CountByKind(20, KindWindow))
}

func TestRegistryDestructionOrderFreesDependentsFirst(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Resource{XID: 1, Owner: 10, Kind: KindPixmap, Pixmap: &Pixmap{XID: 1}}))
	require.NoError(t, r.Register(&Resource{XID: 2, Owner: 10, Kind: KindGC, GC: &GraphicsContext{XID: 2, Tile: 1}}))
	r.AddDependency(2, 1)

	order, err := r.DestructionOrder([]uint32{1, 2})
	require.NoError(t, err)
	require.Len(t, order, 2)

	pos := map[uint32]int{order[0]: 0, order[1]: 1}
	assert.Less(t, pos[2], pos[1])
}

func TestRegistryDestructionOrderIndependentResources(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(windowResource(1, 10)))
	require.NoError(t, r.Register(windowResource(2, 10)))

	order, err := r.DestructionOrder([]uint32{1, 2})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint32{1, 2}, order)
}

func TestRegistryAddRemoveDependency(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Resource{XID: 1, Owner: 10, Kind: KindPixmap, Pixmap: &Pixmap{XID: 1}}))
	require.NoError(t, r.Register(&Resource{XID: 2, Owner: 10, Kind: KindGC, GC: &GraphicsContext{XID: 2}}))

	r.AddDependency(2, 1)
	assert.Error(t, r.Unregister(1))

	r.RemoveDependency(2, 1)
	assert.NoError(t, r.Unregister(1))
}
