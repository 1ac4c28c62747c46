package stash

import "reflect"

type factory struct{}

var Factory factory

func (f factory) NewStore() Store {
	return newStore()
}

// FactoryNewComponent returns the accessor token for component type T,
// assigning T a process-wide identity on first call. Panics once the
// identity registry is full, since that is a startup-time programmer
// error.
func FactoryNewComponent[T any]() AccessibleComponent[T] {
	iden, err := newIdentity(reflect.TypeFor[T]())
	if err != nil {
		panic(err)
	}
	return AccessibleComponent[T]{
		Component: iden,
	}
}

// FactoryNewPool returns an empty standalone pool, unattached to any
// store.
func FactoryNewPool[T any]() *Pool[T] {
	return newPool[T]()
}

func FactoryNewCursor[T any](pool *Pool[T]) *Cursor[T] {
	return newCursor(pool)
}

func FactoryNewCache[T any](cap int) Cache[T] {
	return &SimpleCache[T]{
		itemIndices: make(map[string]int),
		maxCapacity: cap,
	}
}
