package stash

import "iter"

// Register creates an empty pool for T in sto, pre-sized to the store's
// current high-water mark, and adds it to the broadcast list. Registering
// an already-registered type returns the existing pool unchanged.
func (c AccessibleComponent[T]) Register(sto Store) *Pool[T] {
	s := sto.(*store)
	if existing, ok := s.poolFor(c.Component); ok {
		return existing.(*Pool[T])
	}
	pool := newPool[T]()
	if s.maxEntity >= 0 {
		pool.ReserveUpTo(s.maxEntity)
	}
	s.adopt(c.Component, pool)
	return pool
}

// PoolFrom retrieves the pool for T, or false if T was never registered.
func (c AccessibleComponent[T]) PoolFrom(sto Store) (*Pool[T], bool) {
	s := sto.(*store)
	pool, ok := s.poolFor(c.Component)
	if !ok {
		return nil, false
	}
	return pool.(*Pool[T]), true
}

// Add upserts a component for e. A store with no pool for T is left
// untouched; a locked store refuses (use EnqueueAdd instead).
func (c AccessibleComponent[T]) Add(sto Store, e Entity, value T) error {
	if sto.Locked() {
		return LockedStoreError{}
	}
	pool, ok := c.PoolFrom(sto)
	if !ok {
		return nil
	}
	pool.AddComponent(e, value)
	return nil
}

// Remove drops e's component for T. Absent handles and unregistered types
// are a no-op; a locked store refuses (use EnqueueRemove instead).
func (c AccessibleComponent[T]) Remove(sto Store, e Entity) error {
	if sto.Locked() {
		return LockedStoreError{}
	}
	pool, ok := c.PoolFrom(sto)
	if !ok {
		return nil
	}
	pool.Remove(e)
	return nil
}

func (c AccessibleComponent[T]) Get(sto Store, e Entity) (*T, bool) {
	pool, ok := c.PoolFrom(sto)
	if !ok {
		return nil, false
	}
	return pool.Get(e)
}

func (c AccessibleComponent[T]) Has(sto Store, e Entity) bool {
	pool, ok := c.PoolFrom(sto)
	if !ok {
		return false
	}
	return pool.Has(e)
}

func (c AccessibleComponent[T]) Len(sto Store) int {
	pool, ok := c.PoolFrom(sto)
	if !ok {
		return 0
	}
	return pool.Len()
}

func (c AccessibleComponent[T]) Entities(sto Store) []Entity {
	pool, ok := c.PoolFrom(sto)
	if !ok {
		return nil
	}
	return pool.Entities()
}

func (c AccessibleComponent[T]) Components(sto Store) []T {
	pool, ok := c.PoolFrom(sto)
	if !ok {
		return nil
	}
	return pool.Components()
}

// All yields (handle, component) pairs in dense order, holding a store
// lock bit for the duration so structural mutation defers to the queue.
// Iterations nest: the bit drops (and the queue flushes) only when the
// outermost one finishes.
func (c AccessibleComponent[T]) All(sto Store) iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		pool, ok := c.PoolFrom(sto)
		if !ok {
			return
		}
		s := sto.(*store)
		s.beginIteration()
		defer s.endIteration()
		for e, v := range pool.All() {
			if !yield(e, v) {
				return
			}
		}
	}
}

// EnqueueAdd applies immediately when the store is unlocked, otherwise
// buffers the upsert until the last lock bit drops.
func (c AccessibleComponent[T]) EnqueueAdd(sto Store, e Entity, value T) error {
	if !sto.Locked() {
		return c.Add(sto, e, value)
	}
	s := sto.(*store)
	pool, ok := s.poolFor(c.Component)
	if !ok {
		return nil
	}
	s.opQueue.EnqueueComponentOp(opAdd, e, c.ID(), pool, value)
	return nil
}

// EnqueueRemove applies immediately when the store is unlocked, otherwise
// buffers the removal until the last lock bit drops.
func (c AccessibleComponent[T]) EnqueueRemove(sto Store, e Entity) error {
	if !sto.Locked() {
		return c.Remove(sto, e)
	}
	s := sto.(*store)
	pool, ok := s.poolFor(c.Component)
	if !ok {
		return nil
	}
	s.opQueue.EnqueueComponentOp(opRemove, e, c.ID(), pool, nil)
	return nil
}
