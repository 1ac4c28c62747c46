package stash

import (
	"iter"
	"reflect"
)

// noDensePosition marks an empty sparse slot.
const noDensePosition = -1

var _ erasedPool = &Pool[int]{}

// Pool owns every instance of one component type, keyed by entity handle.
//
// The sparse layer maps a handle to its dense position (or noDensePosition).
// The dense layers are packed and aligned: denseEntities[i] holds the
// component value at denseComponents[i]. The sparse layer grows on demand
// and never shrinks; the dense layers shrink only on removal.
type Pool[T any] struct {
	sparse          []int
	denseEntities   []Entity
	denseComponents []T
}

func newPool[T any]() *Pool[T] {
	return &Pool[T]{
		denseEntities:   make([]Entity, 0, Config.initialDenseCapacity),
		denseComponents: make([]T, 0, Config.initialDenseCapacity),
	}
}

// NewEntity grows the sparse layer by one empty slot and returns its
// position as a fresh handle.
func (p *Pool[T]) NewEntity() Entity {
	p.sparse = append(p.sparse, noDensePosition)
	return Entity(len(p.sparse) - 1)
}

// ReserveUpTo ensures the sparse layer covers handle e. New slots are
// empty; the layer never shrinks.
func (p *Pool[T]) ReserveUpTo(e Entity) {
	if e < 0 {
		return
	}
	for len(p.sparse) <= int(e) {
		p.sparse = append(p.sparse, noDensePosition)
	}
}

// AddComponent upserts: an absent handle gets a new dense entry, a present
// one has its value overwritten in place.
func (p *Pool[T]) AddComponent(e Entity, value T) {
	if e < 0 {
		return
	}
	p.ReserveUpTo(e)
	if pos := p.sparse[e]; pos != noDensePosition {
		p.denseEntities[pos] = e
		p.denseComponents[pos] = value
		return
	}
	p.sparse[e] = len(p.denseEntities)
	p.denseEntities = append(p.denseEntities, e)
	p.denseComponents = append(p.denseComponents, value)
}

// Remove drops the component for e via swap-remove: the last dense entry
// overwrites the vacated position and both dense layers truncate by one.
// Dense order is not preserved. Absent handles are a no-op.
func (p *Pool[T]) Remove(e Entity) {
	if e < 0 || int(e) >= len(p.sparse) {
		return
	}
	pos := p.sparse[e]
	if pos == noDensePosition {
		return
	}
	last := len(p.denseEntities) - 1
	moved := p.denseEntities[last]
	p.denseEntities[pos] = moved
	p.denseComponents[pos] = p.denseComponents[last]
	p.denseEntities = p.denseEntities[:last]
	p.denseComponents = p.denseComponents[:last]
	p.sparse[e] = noDensePosition
	if moved != e {
		p.sparse[moved] = pos
	}
}

// Get returns a pointer into the dense layer for e, valid until the next
// structural mutation of the pool.
func (p *Pool[T]) Get(e Entity) (*T, bool) {
	if e < 0 || int(e) >= len(p.sparse) {
		return nil, false
	}
	pos := p.sparse[e]
	if pos == noDensePosition {
		return nil, false
	}
	return &p.denseComponents[pos], true
}

func (p *Pool[T]) Has(e Entity) bool {
	if e < 0 || int(e) >= len(p.sparse) {
		return false
	}
	return p.sparse[e] != noDensePosition
}

// Len reports the size of the dense layers.
func (p *Pool[T]) Len() int {
	return len(p.denseEntities)
}

// Entities exposes the dense handle layer. Callers must not mutate it.
func (p *Pool[T]) Entities() []Entity {
	return p.denseEntities
}

// Components exposes the dense component layer, aligned with Entities.
func (p *Pool[T]) Components() []T {
	return p.denseComponents
}

// All yields (handle, component) pairs in dense order. Post-removal order
// is not insertion order.
func (p *Pool[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		for i := range p.denseEntities {
			if !yield(p.denseEntities[i], &p.denseComponents[i]) {
				return
			}
		}
	}
}

func (p *Pool[T]) addErased(e Entity, value any) error {
	v, ok := value.(T)
	if !ok {
		return ComponentTypeMismatchError{
			Expected: reflect.TypeFor[T](),
			Got:      reflect.TypeOf(value),
		}
	}
	p.AddComponent(e, v)
	return nil
}

func (p *Pool[T]) removeErased(e Entity) {
	p.Remove(e)
}

func (p *Pool[T]) reserveUpTo(e Entity) {
	p.ReserveUpTo(e)
}

func (p *Pool[T]) hasEntity(e Entity) bool {
	return p.Has(e)
}

func (p *Pool[T]) length() int {
	return p.Len()
}
