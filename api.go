package stash

import (
	"iter"
	"reflect"
)

// Entity is a handle into the sparse layers. It carries no payload and the
// store never recycles it; the zero handle is valid, negatives are absent.
type Entity int

type Store interface {
	NewEntity() Entity
	ReserveUpTo(Entity)
	MaxEntity() Entity
	PoolCount() int
	Registered(Component) bool
	RegisteredComponents() iter.Seq[Component]
	ComponentsFor(Entity) []Component
	RemoveEntity(Entity) error
	EnqueueRemoveEntity(Entity) error
	Locked() bool
	Lock()
	Unlock()
	AddLock(uint32)
	RemoveLock(uint32)
}

// Component is the identity token for one component type. Identities are
// assigned once per Go type and shared by every store in the process.
type Component interface {
	ID() uint32
	Type() reflect.Type
}

// erasedPool is the type-erased face a store keeps for each registered
// pool, enabling the entity-wide removal broadcast and debug enumeration.
type erasedPool interface {
	addErased(Entity, any) error
	removeErased(Entity)
	reserveUpTo(Entity)
	hasEntity(Entity) bool
	length() int
}

type iCursor[T any] interface {
	Pairs() iter.Seq2[Entity, *T]
	Next() bool
}

type Cache[T any] interface {
	GetIndex(string) (int, bool)
	GetItem(int) *T
	GetItem32(uint32) *T
	Register(string, T) (int, error)
}

// AccessibleComponent extends a base Component identity with typed
// accessor methods that locate and operate on its pool within a store.
type AccessibleComponent[T any] struct {
	Component
}

// Cursor lazily walks the dense layers of one pool.
type Cursor[T any] struct {
	pool *Pool[T]

	// Current iteration state
	index     int
	remaining int

	// Initialization state
	initialized bool
}

type SimpleCache[T any] struct {
	items       []T
	itemIndices map[string]int
	maxCapacity int
}
