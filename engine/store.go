package engine

import (
	"github.com/lixenwraith/bird-shooter/core"
)

// Store holds one component type as a sparse set: an entity -> slot index
// over dense parallel slices kept in insertion order
// Stores are owned by the frame loop goroutine and are not synchronized
type Store[T any] struct {
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates an empty store for component type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// SetComponent attaches val to e, replacing any previous value in place
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// GetComponent returns the component attached to e
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// HasEntity reports whether e carries this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// RemoveEntity detaches the component from e
func (s *Store[T]) RemoveEntity(e core.Entity) {
	if _, ok := s.index[e]; !ok {
		return
	}
	s.RemoveBatch([]core.Entity{e})
}

// RemoveBatch detaches the component from every listed entity with one compaction pass
// Remaining entities keep their relative order
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	doomed := 0
	for _, e := range entities {
		if i, ok := s.index[e]; ok && i >= 0 {
			s.index[e] = -1
			doomed++
		}
	}
	if doomed == 0 {
		return
	}

	w := 0
	for r, e := range s.entities {
		if s.index[e] < 0 {
			delete(s.index, e)
			continue
		}
		s.entities[w] = e
		s.values[w] = s.values[r]
		s.index[e] = w
		w++
	}

	var zero T
	for i := w; i < len(s.values); i++ {
		s.values[i] = zero
	}
	s.entities = s.entities[:w]
	s.values = s.values[:w]
}

// GetAllEntities returns a copy of the entities in insertion order
func (s *Store[T]) GetAllEntities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntities returns the number of entities carrying this component
func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// ClearAllComponents empties the store
func (s *Store[T]) ClearAllComponents() {
	clear(s.index)
	clear(s.values)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}
