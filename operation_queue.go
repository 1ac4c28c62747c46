package stash

import (
	"fmt"
)

type operationType int

const (
	opNoop operationType = iota - 1
	opAdd
	opRemove
	opRemoveEntity
)

type operation struct {
	typ    operationType
	entity Entity
	pool   erasedPool
	value  any
}

type opKey struct {
	entity Entity
	poolID uint32
}

type opQueue struct {
	componentOps    []operation
	removeEntityOps []operation
	pendingRemoves  map[Entity]struct{}
	pendingMods     map[opKey]int
}

func newOpQueue() opQueue {
	return opQueue{
		pendingRemoves: make(map[Entity]struct{}),
		pendingMods:    make(map[opKey]int),
	}
}

// EnqueueComponentOp buffers an add/remove for one (entity, pool) pair.
// A later op on the same pair overwrites the pending one, and a pending
// entity removal swallows component ops for that entity outright.
func (q *opQueue) EnqueueComponentOp(typ operationType, e Entity, poolID uint32, pool erasedPool, value any) {
	if _, removed := q.pendingRemoves[e]; removed {
		return
	}
	key := opKey{entity: e, poolID: poolID}
	if idx, exists := q.pendingMods[key]; exists {
		existingOp := &q.componentOps[idx]
		existingOp.typ = typ
		existingOp.value = value
		return
	}
	q.pendingMods[key] = len(q.componentOps)
	q.componentOps = append(q.componentOps, operation{
		typ:    typ,
		entity: e,
		pool:   pool,
		value:  value,
	})
}

func (q *opQueue) EnqueueRemoveEntity(e Entity) {
	if _, exists := q.pendingRemoves[e]; exists {
		return
	}
	q.pendingRemoves[e] = struct{}{}

	// Cancel any pending component operations for this entity
	for i := range q.componentOps {
		if q.componentOps[i].entity == e {
			q.componentOps[i].typ = opNoop
		}
	}

	q.removeEntityOps = append(q.removeEntityOps, operation{
		typ:    opRemoveEntity,
		entity: e,
	})
}

// processOperationQueue runs once the last lock bit drops: component ops
// first, entity removals last.
func (sto *store) processOperationQueue() error {
	q := &sto.opQueue
	if len(q.componentOps) == 0 && len(q.removeEntityOps) == 0 {
		return nil
	}

	for _, op := range q.componentOps {
		switch op.typ {
		case opAdd:
			if err := op.pool.addErased(op.entity, op.value); err != nil {
				return fmt.Errorf("failed to apply queued component add: %w", err)
			}
		case opRemove:
			op.pool.removeErased(op.entity)
		}
	}

	for _, op := range q.removeEntityOps {
		if err := sto.RemoveEntity(op.entity); err != nil {
			return fmt.Errorf("failed to apply queued entity removal: %w", err)
		}
	}

	// Clear all queues
	q.componentOps = q.componentOps[:0]
	q.removeEntityOps = q.removeEntityOps[:0]
	clear(q.pendingRemoves)
	clear(q.pendingMods)
	return nil
}
