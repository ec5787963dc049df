package ecs

// Entity identifies one entity inside a World. Entities are allocated from 1;
// 0 is never a valid entity.
type Entity uint32

// Storage is a cache-friendly sparse-set component store keyed by Entity.
// Components live in a dense slice iterated by systems; the sparse slice maps
// entity ids to dense indices.
type Storage[T any] struct {
	denseEntities []Entity
	denseValues   []T
	sparse        []int
}

// NewStorage creates an empty component store.
func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{}
}

// Has returns true if the entity exists in the store.
func (s *Storage[T]) Has(e Entity) bool {
	if e == 0 || int(e-1) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[e-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == e
}

// Get returns the component value for e.
//
// Returns:
//   - T: the component value, or the zero value
//   - bool: false when e has no component in this store
func (s *Storage[T]) Get(e Entity) (T, bool) {
	if !s.Has(e) {
		var zero T
		return zero, false
	}
	return s.denseValues[s.sparse[e-1]], true
}

// GetPtr returns a pointer into the dense slice for in-place mutation, or nil.
// The pointer is invalidated by any Set or Remove on this store.
func (s *Storage[T]) GetPtr(e Entity) *T {
	if !s.Has(e) {
		return nil
	}
	return &s.denseValues[s.sparse[e-1]]
}

// Set inserts or updates the component for e.
func (s *Storage[T]) Set(e Entity, v T) {
	if e == 0 {
		return
	}
	if int(e-1) >= len(s.sparse) {
		grow := int(e) - len(s.sparse)
		for i := 0; i < grow; i++ {
			s.sparse = append(s.sparse, -1)
		}
	}
	if s.Has(e) {
		s.denseValues[s.sparse[e-1]] = v
		return
	}
	s.denseEntities = append(s.denseEntities, e)
	s.denseValues = append(s.denseValues, v)
	s.sparse[e-1] = len(s.denseEntities) - 1
}

// Remove deletes the component for e if present, swapping the last dense
// element into the hole.
func (s *Storage[T]) Remove(e Entity) {
	if !s.Has(e) {
		return
	}
	idx := s.sparse[e-1]
	last := len(s.denseEntities) - 1
	lastEntity := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastEntity-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[e-1] = -1
}

// Entities returns the dense entity list. The caller must not mutate it.
func (s *Storage[T]) Entities() []Entity {
	return s.denseEntities
}

// Len returns the number of stored components.
func (s *Storage[T]) Len() int {
	return len(s.denseEntities)
}
