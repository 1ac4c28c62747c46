package stash

import (
	"iter"

	"github.com/TheBitDrifter/mask"
	iter_util "github.com/TheBitDrifter/util/iter"
)

var _ Store = &store{}

// iterationLockBit is the lock bit held by store-level iteration. Caller
// lock bits should stay below it.
const iterationLockBit uint32 = 255

type store struct {
	locks      mask.Mask
	registered mask.Mask
	iterating  int
	pools      []poolEntry
	byID       map[uint32]erasedPool
	maxEntity  Entity
	opQueue    opQueue
}

// poolEntry pairs a component identity with its erased pool handle; the
// slice of entries is the broadcast list for entity-wide removal.
type poolEntry struct {
	comp Component
	pool erasedPool
}

func newStore() Store {
	return &store{
		byID:      make(map[uint32]erasedPool),
		maxEntity: -1,
		opQueue:   newOpQueue(),
	}
}

// NewEntity allocates the next handle above the high-water mark and raises
// the mark to it.
func (sto *store) NewEntity() Entity {
	sto.maxEntity++
	return sto.maxEntity
}

// ReserveUpTo raises the high-water mark. Existing pools are not touched;
// they size themselves lazily on first use. Only pools registered after
// this call are pre-sized to the mark.
func (sto *store) ReserveUpTo(e Entity) {
	if e > sto.maxEntity {
		sto.maxEntity = e
	}
}

func (sto *store) MaxEntity() Entity {
	return sto.maxEntity
}

func (sto *store) PoolCount() int {
	return len(sto.pools)
}

func (sto *store) Registered(comp Component) bool {
	var bit mask.Mask
	bit.Mark(comp.ID())
	return sto.registered.ContainsAll(bit)
}

// RegisteredComponents yields the identity of every registered pool, in
// registration order.
func (sto *store) RegisteredComponents() iter.Seq[Component] {
	return func(yield func(Component) bool) {
		for _, entry := range sto.pools {
			if !yield(entry.comp) {
				return
			}
		}
	}
}

// ComponentsFor reports which registered component types currently hold a
// component for e. Debug enumeration; not meant for hot paths.
func (sto *store) ComponentsFor(e Entity) []Component {
	var holding iter.Seq[Component] = func(yield func(Component) bool) {
		for _, entry := range sto.pools {
			if !entry.pool.hasEntity(e) {
				continue
			}
			if !yield(entry.comp) {
				return
			}
		}
	}
	return iter_util.Collect(holding)
}

// RemoveEntity broadcasts removal of e to every registered pool, whether
// or not that pool holds a component for it.
func (sto *store) RemoveEntity(e Entity) error {
	if sto.Locked() {
		return LockedStoreError{}
	}
	for _, entry := range sto.pools {
		entry.pool.removeErased(e)
	}
	return nil
}

func (sto *store) EnqueueRemoveEntity(e Entity) error {
	if !sto.Locked() {
		return sto.RemoveEntity(e)
	}
	sto.opQueue.EnqueueRemoveEntity(e)
	return nil
}

func (sto *store) Locked() bool {
	return sto.locks != (mask.Mask{})
}

func (sto *store) Lock() {
	sto.AddLock(0)
}

func (sto *store) Unlock() {
	sto.RemoveLock(0)
}

func (sto *store) AddLock(bit uint32) {
	sto.locks.Mark(bit)
}

// RemoveLock drops a lock bit. When the last bit drops, queued operations
// are applied; a failure there means an invariant was already corrupted,
// so it is not recoverable.
func (sto *store) RemoveLock(bit uint32) {
	sto.locks.Unmark(bit)
	if sto.Locked() {
		return
	}
	if err := sto.processOperationQueue(); err != nil {
		panic(err)
	}
}

// beginIteration marks the start of a store-level iteration. Iterations
// nest; the shared lock bit is held from the outermost begin to the
// outermost end so the queue cannot flush mid-walk.
func (sto *store) beginIteration() {
	sto.iterating++
	if sto.iterating == 1 {
		sto.AddLock(iterationLockBit)
	}
}

func (sto *store) endIteration() {
	sto.iterating--
	if sto.iterating == 0 {
		sto.RemoveLock(iterationLockBit)
	}
}

// adopt wires a freshly created pool into the typed routing table and the
// broadcast list. Callers must have checked for an existing registration.
func (sto *store) adopt(comp Component, pool erasedPool) {
	sto.registered.Mark(comp.ID())
	sto.byID[comp.ID()] = pool
	sto.pools = append(sto.pools, poolEntry{comp: comp, pool: pool})
}

func (sto *store) poolFor(comp Component) (erasedPool, bool) {
	pool, ok := sto.byID[comp.ID()]
	return pool, ok
}
