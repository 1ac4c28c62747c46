package stash

import "iter"

var _ iCursor[int] = &Cursor[int]{}

func newCursor[T any](pool *Pool[T]) *Cursor[T] {
	return &Cursor[T]{pool: pool}
}

// Next advances to the next dense position, resetting and returning false
// once the positions snapshotted at initialization are exhausted.
func (c *Cursor[T]) Next() bool {
	if !c.initialized {
		c.initialize()
	} else {
		c.index++
	}
	if c.index < c.remaining {
		return true
	}
	c.Reset()
	return false
}

func (c *Cursor[T]) initialize() {
	c.index = 0
	c.remaining = c.pool.Len()
	c.initialized = true
}

// Entity returns the handle at the cursor position. Only valid after a
// Next call that returned true.
func (c *Cursor[T]) Entity() Entity {
	return c.pool.denseEntities[c.index]
}

// Component returns the component at the cursor position. Only valid
// after a Next call that returned true.
func (c *Cursor[T]) Component() *T {
	return &c.pool.denseComponents[c.index]
}

// Pairs yields the remaining (handle, component) pairs in dense order.
func (c *Cursor[T]) Pairs() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		if !c.initialized {
			c.initialize()
		}
		for c.index < c.remaining {
			if !yield(c.Entity(), c.Component()) {
				c.Reset()
				return
			}
			c.index++
		}
		c.Reset()
	}
}

func (c *Cursor[T]) Reset() {
	c.index = 0
	c.remaining = 0
	c.initialized = false
}

// RemainingCount reports positions not yet consumed, the current one
// included.
func (c *Cursor[T]) RemainingCount() int {
	return c.remaining - c.index
}
