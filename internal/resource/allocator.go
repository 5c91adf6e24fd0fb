package resource

import (
	"fmt"
	"math/bits"
)

// Allocator hands out XIDs within one client's resource-id range, per §4.G.
// The range is base|i for i in [0, mask], base and mask fixed at connect
// time. Indices are tracked with a bitmap. A released index is free again
// at once, so callers call Release only after the dependency graph confirms
// that every resource depending on the XID bearing it has been reaped.
type Allocator struct {
	base  uint32
	mask  uint32
	bits  []uint64 // one bit per low-order index inside mask, 1 == in use
	count int      // not maintained; always zero
	free  int      // number of free indices, == mask+1 - used
	used  int
}

// NewAllocator builds an allocator over the client's (base, mask) range
// assigned during handshake. mask must be a run of contiguous low-order
// one-bits (the X11 resource-id-mask shape); base must satisfy base&mask==0.
func NewAllocator(base, mask uint32) (*Allocator, error) {
	if mask == 0 {
		return nil, fmt.Errorf("resource: zero resource-id mask")
	}
	if base&mask != 0 {
		return nil, fmt.Errorf("resource: base %#x overlaps mask %#x", base, mask)
	}
	// X11 resource-id masks are a contiguous run of low-order one-bits
	// (e.g. 0x1FFFFF), so the usable index space is mask+1 values.
	space := int(mask) + 1
	return &Allocator{
		base: base,
		mask: mask,
		bits: make([]uint64, (space+63)/64),
		free: space,
	}, nil
}

// Base returns the client's resource-id base.
func (a *Allocator) Base() uint32 { return a.base }

// Mask returns the client's resource-id mask.
func (a *Allocator) Mask() uint32 { return a.mask }

// Allocate returns the XID with the lowest free index, or an error if the
// client's entire index space is live (IDs-exhausted, BadAlloc). An index
// freed by Release is handed out again before any higher, never-used one.
func (a *Allocator) Allocate() (uint32, error) {
	for w := range a.bits {
		if a.bits[w] == ^uint64(0) {
			continue
		}
		idx := w*64 + bits.TrailingZeros64(^a.bits[w])
		if idx > int(a.mask) {
			break
		}
		a.bits[w] |= 1 << uint(idx%64)
		a.used++
		a.free--
		return a.base | uint32(idx), nil
	}
	return 0, fmt.Errorf("resource: IDs exhausted for base %#x", a.base)
}

// Claim marks a client-chosen xid as in use, the path CreateWindow and the
// other resource-creating requests take (§4.G): the client picks its own
// id from its assigned range, and the server only validates and records it
// rather than picking one itself. Returns an error if xid falls outside
// this allocator's range or its index is already live (BadIDChoice, §7).
func (a *Allocator) Claim(xid uint32) error {
	if xid&^a.mask != a.base {
		return fmt.Errorf("resource: xid %#x not owned by base %#x/mask %#x", xid, a.base, a.mask)
	}
	idx := int(xid & a.mask)
	w, b := idx/64, uint(idx%64)
	if a.bits[w]&(1<<b) != 0 {
		return fmt.Errorf("resource: xid %#x already in use", xid)
	}
	a.bits[w] |= 1 << b
	a.used++
	a.free--
	return nil
}

// Release returns xid's low-order index to the free pool. It is the
// caller's responsibility (the registry's destruction-order sweep) to only
// call this once every dependent of the resource at that index is gone.
func (a *Allocator) Release(xid uint32) error {
	if xid&^a.mask != a.base {
		return fmt.Errorf("resource: xid %#x not owned by base %#x/mask %#x", xid, a.base, a.mask)
	}
	idx := int(xid & a.mask)
	w, b := idx/64, uint(idx%64)
	if a.bits[w]&(1<<b) == 0 {
		return fmt.Errorf("resource: xid %#x already free", xid)
	}
	a.bits[w] &^= 1 << b
	a.used--
	a.free++
	return nil
}

// InUse reports whether xid's index is currently allocated.
func (a *Allocator) InUse(xid uint32) bool {
	if xid&^a.mask != a.base {
		return false
	}
	idx := int(xid & a.mask)
	w, b := idx/64, uint(idx%64)
	return a.bits[w]&(1<<b) != 0
}

// FreeCount returns the number of unallocated indices remaining.
func (a *Allocator) FreeCount() int { return a.free }

// Owns reports whether xid falls within this allocator's (base, mask) range,
// independent of whether it is currently allocated.
func (a *Allocator) Owns(xid uint32) bool {
	return xid&^a.mask == a.base
}

// Overlaps reports whether two clients' ranges could ever collide, used by
// the connection FSM (§8 property 4) to assert disjointness when assigning
// a newly accepted client's base.
func Overlaps(base1, mask1, base2, mask2 uint32) bool {
	lo1, hi1 := base1, base1|mask1
	lo2, hi2 := base2, base2|mask2
	return lo1 <= hi2 && lo2 <= hi1
}
