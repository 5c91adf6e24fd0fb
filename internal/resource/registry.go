// Package resource is the type-erased XID registry (§4.H), the ownership
// and dependency graph over it (§4.I), and the per-client XID allocator
// (§4.G). It is the single process-wide mutable store the dispatcher
// mutates under a short write lock per request (§5); everything else in the
// engine only ever sees typed resources through Lookup/Register/Unregister.
package resource

import (
	"fmt"
	"sort"
	"sync"
)

// NotFoundError is returned by Lookup when xid names no resource at all
// (distinct from a kind mismatch, which returns a MismatchError).
type NotFoundError struct{ XID uint32 }

func (e *NotFoundError) Error() string { return fmt.Sprintf("resource: xid %#x not registered", e.XID) }

// MismatchError is returned by Lookup when xid is registered but under a
// different Kind than the caller expected; the dispatcher translates this
// into the appropriate BadWindow/BadPixmap/... wire error.
type MismatchError struct {
	XID      uint32
	Expected Kind
	Actual   Kind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("resource: xid %#x is a %s, not a %s", e.XID, e.Actual, e.Expected)
}

// DependentsError is returned by Unregister when other live resources still
// depend on xid (§4.I); the caller must tear those down first.
type DependentsError struct {
	XID        uint32
	Dependents []uint32
}

func (e *DependentsError) Error() string {
	return fmt.Sprintf("resource: xid %#x has %d live dependent(s)", e.XID, len(e.Dependents))
}

// Registry is the primary XID->Resource map plus the ClientID and Kind
// secondary indices and the reverse-dependency graph. All mutation happens
// under one lock so the indices never observe each other mid-update.
type Registry struct {
	mu sync.RWMutex

	byXID    map[uint32]*Resource
	byClient map[ClientID]map[uint32]struct{}
	byKind   map[Kind]map[uint32]struct{}

	// dependsOn[x] is the set of xids that x depends on (e.g. a GC depends
	// on its tile pixmap and font). dependedOnBy is the reverse relation
	// used to reject Unregister while dependents remain.
	dependsOn    map[uint32]map[uint32]struct{}
	dependedOnBy map[uint32]map[uint32]struct{}
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byXID:        make(map[uint32]*Resource),
		byClient:     make(map[ClientID]map[uint32]struct{}),
		byKind:       make(map[Kind]map[uint32]struct{}),
		dependsOn:    make(map[uint32]map[uint32]struct{}),
		dependedOnBy: make(map[uint32]map[uint32]struct{}),
	}
}

// Register inserts a fresh resource. It fails if the xid is already
// registered, preserving invariant 1 (XID uniqueness). The request handlers
// Claim the xid from the client's Allocator first, and that is where a
// reused client-chosen id is reported as BadIDChoice; they answer a
// Register failure with BadAlloc (BadName for OpenFont).
func (r *Registry) Register(res *Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byXID[res.XID]; ok {
		return fmt.Errorf("resource: xid %#x already registered", res.XID)
	}
	r.byXID[res.XID] = res
	r.indexInsert(res)
	return nil
}

func (r *Registry) indexInsert(res *Resource) {
	if res.Kind != KindAtom {
		clients, ok := r.byClient[res.Owner]
		if !ok {
			clients = make(map[uint32]struct{})
			r.byClient[res.Owner] = clients
		}
		clients[res.XID] = struct{}{}
	}
	kinds, ok := r.byKind[res.Kind]
	if !ok {
		kinds = make(map[uint32]struct{})
		r.byKind[res.Kind] = kinds
	}
	kinds[res.XID] = struct{}{}
}

func (r *Registry) indexRemove(res *Resource) {
	if clients, ok := r.byClient[res.Owner]; ok {
		delete(clients, res.XID)
		if len(clients) == 0 {
			delete(r.byClient, res.Owner)
		}
	}
	if kinds, ok := r.byKind[res.Kind]; ok {
		delete(kinds, res.XID)
		if len(kinds) == 0 {
			delete(r.byKind, res.Kind)
		}
	}
}

// Lookup returns the resource for xid, checked against expected. Passing
// KindAny skips the kind check (used for Drawable lookups that accept
// either Window or Pixmap, §4.H).
func (r *Registry) Lookup(xid uint32, expected Kind) (*Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.byXID[xid]
	if !ok {
		return nil, &NotFoundError{XID: xid}
	}
	if expected == KindAny {
		return res, nil
	}
	if expected == KindDrawable {
		if res.Kind != KindWindow && res.Kind != KindPixmap {
			return nil, &MismatchError{XID: xid, Expected: expected, Actual: res.Kind}
		}
		return res, nil
	}
	if res.Kind != expected {
		return nil, &MismatchError{XID: xid, Expected: expected, Actual: res.Kind}
	}
	return res, nil
}

// Unregister removes xid, failing with DependentsError if anything still
// depends on it (§4.I). Callers must tear down dependents first.
func (r *Registry) Unregister(xid uint32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.byXID[xid]
	if !ok {
		return &NotFoundError{XID: xid}
	}
	if deps, ok := r.dependedOnBy[xid]; ok && len(deps) > 0 {
		list := make([]uint32, 0, len(deps))
		for d := range deps {
			list = append(list, d)
		}
		return &DependentsError{XID: xid, Dependents: list}
	}
	// Drop this resource's own outgoing edges so the targets' dependedOnBy
	// sets don't leak a reference to a now-gone xid.
	for target := range r.dependsOn[xid] {
		if set, ok := r.dependedOnBy[target]; ok {
			delete(set, xid)
			if len(set) == 0 {
				delete(r.dependedOnBy, target)
			}
		}
	}
	delete(r.dependsOn, xid)
	delete(r.dependedOnBy, xid)
	delete(r.byXID, xid)
	r.indexRemove(res)
	return nil
}

// AddDependency records that xid depends on on (e.g. a GC on its tile
// pixmap), used to compute safe destruction order and to block premature
// Unregister of on while xid is alive.
func (r *Registry) AddDependency(xid, on uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dependsOn[xid] == nil {
		r.dependsOn[xid] = make(map[uint32]struct{})
	}
	r.dependsOn[xid][on] = struct{}{}
	if r.dependedOnBy[on] == nil {
		r.dependedOnBy[on] = make(map[uint32]struct{})
	}
	r.dependedOnBy[on][xid] = struct{}{}
}

// RemoveDependency drops a previously recorded edge, e.g. when a GC's tile
// attribute is changed away from a pixmap.
func (r *Registry) RemoveDependency(xid, on uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if set, ok := r.dependsOn[xid]; ok {
		delete(set, on)
		if len(set) == 0 {
			delete(r.dependsOn, xid)
		}
	}
	if set, ok := r.dependedOnBy[on]; ok {
		delete(set, xid)
		if len(set) == 0 {
			delete(r.dependedOnBy, on)
		}
	}
}

// ClientResources returns the xids currently owned by c, in no particular
// order; used for limit accounting and as the seed set for DestructionOrder.
func (r *Registry) ClientResources(c ClientID) []uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.byClient[c]
	out := make([]uint32, 0, len(set))
	for xid := range set {
		out = append(out, xid)
	}
	return out
}

// CountByKind returns how many live resources of kind a client owns. No
// per-client limit check in the server calls it.
func (r *Registry) CountByKind(c ClientID, kind Kind) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for xid := range r.byClient[c] {
		if res, ok := r.byXID[xid]; ok && res.Kind == kind {
			n++
		}
	}
	return n
}

// DestructionOrder computes the order in which a client's own resources
// must be freed so that no resource is torn down while something else
// (even another resource of the same client) still depends on it: a
// topological sort of the dependsOn DAG that puts dependents before their
// dependencies (only edges whose two ends are both in xids are considered).
//
// Per §9's Open Question resolution, the dependency graph is an invariant
// DAG; if the sort cannot place every xid (a cycle, which must never
// happen), DestructionOrder returns an error rather than silently
// returning the input order.
func (r *Registry) DestructionOrder(xids []uint32) ([]uint32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := make(map[uint32]struct{}, len(xids))
	for _, x := range xids {
		set[x] = struct{}{}
	}

	// Destruction must free *dependents* before *dependencies* (you can't
	// free a pixmap while a GC still tiles it). remaining[x] counts the
	// members z of the set with x in dependsOn[z] (z depends on x); x is
	// freed only once every such z has been freed. That's a topological
	// sort of the "depends on" DAG visiting dependents before dependencies.
	remaining := make(map[uint32]int, len(xids)) // remaining live dependents within set
	for _, x := range xids {
		remaining[x] = 0
	}
	for _, x := range xids {
		for on := range r.dependsOn[x] {
			if _, ok := set[on]; ok {
				remaining[on]++
			}
		}
	}

	var ready []uint32
	for _, x := range xids {
		if remaining[x] == 0 {
			ready = append(ready, x)
		}
	}
	sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })

	order := make([]uint32, 0, len(xids))
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool { return ready[i] < ready[j] })
		x := ready[0]
		ready = ready[1:]
		order = append(order, x)
		for on := range r.dependsOn[x] {
			if _, ok := set[on]; !ok {
				continue
			}
			remaining[on]--
			if remaining[on] == 0 {
				ready = append(ready, on)
			}
		}
	}

	if len(order) != len(xids) {
		return nil, fmt.Errorf("resource: dependency graph is not a DAG over %d resources (BadImplementation)", len(xids))
	}
	return order, nil
}
