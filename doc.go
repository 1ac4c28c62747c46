/*
Package stash provides sparse-set component storage for entity/component designs.

Stash maps integer entity handles to per-type component values through a
sparse/dense array pairing, giving O(1) add, lookup, and removal per pool.
A Store groups one Pool per registered component type behind typed accessor
tokens, plus a type-erased broadcast list so an entity can be wiped from
every pool without the caller enumerating component types.

Core Concepts:

  - Entity: an integer handle representing a game object. Handles carry no
    payload and are never recycled by the store.
  - Pool: the sparse/dense container that owns every instance of one
    component type.
  - Store: a registry of pools keyed by component identity.
  - AccessibleComponent: a typed token that routes operations to the
    matching pool.

Basic Usage:

	store := stash.Factory.NewStore()

	// Define and register components
	position := stash.FactoryNewComponent[Position]()
	velocity := stash.FactoryNewComponent[Velocity]()
	position.Register(store)
	velocity.Register(store)

	// Create an entity and attach components
	player := store.NewEntity()
	position.Add(store, player, Position{X: 10, Y: 20})
	velocity.Add(store, player, Velocity{X: 1, Y: 2})

	// Iterate one pool, reading a second along the way
	for entity, pos := range position.All(store) {
		if vel, ok := velocity.Get(store, entity); ok {
			pos.X += vel.X
			pos.Y += vel.Y
		}
	}

	// Remove the entity from every pool at once
	store.RemoveEntity(player)

Structural mutation must not be interleaved with iteration over the same
pool. Store-level iteration holds a lock bit for its duration, and the
Enqueue variants buffer mutations until the last lock bit is released.

Stash works as a standalone library or as the storage layer beneath a
larger ECS.
*/
package stash
