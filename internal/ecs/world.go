package ecs

import (
	"slices"
	"sort"
)

// World issues entity ids and tracks the stores registered with it so that
// destroying an entity removes all of its components.
type World struct {
	nextID Entity
	alive  map[Entity]struct{}
	stores []AnyStore
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID: 1,
		alive:  make(map[Entity]struct{}),
	}
}

// Register adds a store to the world's lifecycle management.
// Registering the same store twice has no effect.
func (w *World) Register(store AnyStore) {
	if slices.Contains(w.stores, store) {
		return
	}
	w.stores = append(w.stores, store)
}

// CreateEntity returns a fresh entity id.
func (w *World) CreateEntity() Entity {
	e := w.nextID
	w.nextID++
	w.alive[e] = struct{}{}
	return e
}

// DestroyEntity removes the entity and every component it owns.
func (w *World) DestroyEntity(e Entity) {
	if _, ok := w.alive[e]; !ok {
		return
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	delete(w.alive, e)
}

// Alive reports whether the entity was created and not yet destroyed.
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return len(w.alive)
}

// Clear destroys all entities and empties every registered store.
// Entity ids are not reused afterwards.
func (w *World) Clear() {
	for _, s := range w.stores {
		s.Clear()
	}
	w.alive = make(map[Entity]struct{})
}

// Query returns the entities present in every given store, ordered by id.
// Intersection starts from the smallest store.
func Query(stores ...AnyStore) []Entity {
	if len(stores) == 0 {
		return nil
	}

	ordered := make([]AnyStore, len(stores))
	copy(ordered, stores)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Len() < ordered[j].Len()
	})

	candidates := ordered[0].Entities()
	for _, store := range ordered[1:] {
		filtered := candidates[:0]
		for _, e := range candidates {
			if store.Has(e) {
				filtered = append(filtered, e)
			}
		}
		candidates = filtered
		if len(candidates) == 0 {
			break
		}
	}

	slices.Sort(candidates)
	return candidates
}
