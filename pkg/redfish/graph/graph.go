package graph

import (
	"fmt"
	"sync"

	"github.com/rackwise/redfish-client/pkg/redfish/errors"
	"github.com/rackwise/redfish-client/pkg/redfish/types"
)

// Graph is the runtime cache of resolved resources, keyed by resource
// identifier. It is a cache, not a consistency mechanism: entries may be
// stale, and staleness is explicit. Cross references between entities are
// stored by identifier only, so reference cycles between resources have
// no structural cost.
type Graph struct {
	mutex   sync.RWMutex
	entries map[string]*entry
	removed map[string]bool

	slotMutex sync.Mutex
	slots     map[string]*sync.Mutex
}

type entry struct {
	entity     types.Entity
	generation uint64
	stale      bool
}

func New() *Graph {
	return &Graph{
		entries: map[string]*entry{},
		removed: map[string]bool{},
		slots:   map[string]*sync.Mutex{},
	}
}

// Get returns the cached entity for id if one is present and not marked
// stale.
func (g *Graph) Get(id string) (types.Entity, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	e, ok := g.entries[id]
	if !ok || e.stale {
		return nil, false
	}

	return e.entity, true
}

// InsertOrReplace installs a freshly fetched or mutated entity, replacing
// any prior entry for the same identifier. The entry's generation counter
// is bumped so superseded handles can be detected. Installing a resource
// clears any removal tombstone for its identifier: the server has shown
// the identifier to be live again.
func (g *Graph) InsertOrReplace(entity types.Entity) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	id := entity.ID()

	e, ok := g.entries[id]
	if !ok {
		e = &entry{}
		g.entries[id] = e
	}

	e.entity = entity
	e.generation++
	e.stale = false

	delete(g.removed, id)
}

// Invalidate marks an entry stale without removing it. The next Get for
// the identifier misses, forcing a re-fetch.
func (g *Graph) Invalidate(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if e, ok := g.entries[id]; ok {
		e.stale = true
	}
}

// Remove deletes the entry entirely and tombstones the identifier. Used
// after a confirmed server side deletion; links that still target the
// identifier must resolve to a dangling reference error instead of being
// silently re-fetched as a different logical resource.
func (g *Graph) Remove(id string) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	delete(g.entries, id)
	g.removed[id] = true
}

// Removed reports whether the identifier was deleted via Remove and has
// not been re-installed since.
func (g *Graph) Removed(id string) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return g.removed[id]
}

// CheckLink verifies that a link may be resolved: a link to a removed
// identifier fails with ErrDanglingReference.
func (g *Graph) CheckLink(link types.Link) error {
	if g.Removed(link.Target) {
		return errors.NewDanglingReferenceError(
			fmt.Sprintf("link targets removed resource %s", link.Target),
		)
	}

	return nil
}

// Generation returns the entry's generation counter, zero when the
// identifier has never been installed.
func (g *Graph) Generation(id string) uint64 {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if e, ok := g.entries[id]; ok {
		return e.generation
	}

	return 0
}

// LockEntry takes the per-identifier mutation slot. A mutation holds the
// slot for the whole of read-tag, issue-request, install-result, so two
// concurrent mutations of the same identifier serialize while operations
// on distinct identifiers never block each other. Slots survive Remove,
// keeping the lock valid for mutations already in flight.
func (g *Graph) LockEntry(id string) {
	g.slot(id).Lock()
}

// UnlockEntry releases the per-identifier mutation slot.
func (g *Graph) UnlockEntry(id string) {
	g.slot(id).Unlock()
}

func (g *Graph) slot(id string) *sync.Mutex {
	g.slotMutex.Lock()
	defer g.slotMutex.Unlock()

	m, ok := g.slots[id]
	if !ok {
		m = &sync.Mutex{}
		g.slots[id] = m
	}

	return m
}

// Len returns the number of live entries, stale ones included.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	return len(g.entries)
}
