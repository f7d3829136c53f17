// Package ecs provides a small entity-component registry for game simulations.
// Components live in typed stores keyed by entity id; systems iterate the
// intersection of the stores they need.
//
// The registry is not safe for concurrent use. A simulation tick owns the
// world exclusively while it runs.
package ecs

// Entity is a stable identifier for a simulation object. Zero is never issued.
type Entity uint64

// AnyStore is the type-erased view of a Store used by World for lifecycle
// operations and by Query for set intersection.
type AnyStore interface {
	Has(e Entity) bool
	Remove(e Entity)
	Len() int
	Entities() []Entity
	Clear()
}

// Store is a sparse-set container for one component type.
type Store[T any] struct {
	components map[Entity]*T
	entities   []Entity // dense list of entities that own a T
}

// NewStore creates an empty component store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]*T),
		entities:   make([]Entity, 0, 8),
	}
}

// Set inserts or replaces the component for an entity.
func (s *Store[T]) Set(e Entity, val T) {
	if ptr, exists := s.components[e]; exists {
		*ptr = val
		return
	}
	v := val
	s.components[e] = &v
	s.entities = append(s.entities, e)
}

// Get returns a copy of the component for an entity.
func (s *Store[T]) Get(e Entity) (T, bool) {
	ptr, ok := s.components[e]
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// Ptr returns a pointer to the stored component for in-place mutation,
// or nil if the entity has none. The pointer stays valid until Remove.
func (s *Store[T]) Ptr(e Entity) *T {
	return s.components[e]
}

// Has reports whether the entity owns a component in this store.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes the entity's component. Missing entities are ignored.
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities[i] = s.entities[len(s.entities)-1]
			s.entities = s.entities[:len(s.entities)-1]
			break
		}
	}
}

// Len returns the number of entities in the store.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Entities returns a copy of the entities that own this component.
func (s *Store[T]) Entities() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Clear removes every component from the store.
func (s *Store[T]) Clear() {
	s.components = make(map[Entity]*T)
	s.entities = s.entities[:0]
}
