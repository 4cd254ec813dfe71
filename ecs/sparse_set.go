package ecs

import "github.com/kamstrup/intmap"

// componentStore is the type-erased view the world uses to drop every
// component of a destroyed entity.
type componentStore interface {
	remove(id slotID) bool
	has(id slotID) bool
	len() int
}

// sparseSet keeps components densely packed for iteration and indexes them by
// entity slot id.
type sparseSet[T any] struct {
	index  *intmap.Map[slotID, int]
	ids    []slotID
	values []*T
}

func newSparseSet[T any]() *sparseSet[T] {
	return &sparseSet[T]{index: intmap.New[slotID, int](64)}
}

func (s *sparseSet[T]) has(id slotID) bool {
	_, ok := s.index.Get(id)
	return ok
}

func (s *sparseSet[T]) get(id slotID) (*T, bool) {
	idx, ok := s.index.Get(id)
	if !ok {
		return nil, false
	}
	return s.values[idx], true
}

func (s *sparseSet[T]) set(id slotID, v *T) {
	if idx, ok := s.index.Get(id); ok {
		s.values[idx] = v
		return
	}
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
	s.index.Put(id, len(s.ids)-1)
}

func (s *sparseSet[T]) remove(id slotID) bool {
	idx, ok := s.index.Get(id)
	if !ok {
		return false
	}
	last := len(s.ids) - 1
	lastID := s.ids[last]

	s.ids[idx] = lastID
	s.values[idx] = s.values[last]
	s.index.Put(lastID, idx)

	s.ids[last] = 0
	s.values[last] = nil
	s.ids = s.ids[:last]
	s.values = s.values[:last]
	s.index.Del(id)
	return true
}

func (s *sparseSet[T]) len() int {
	return len(s.ids)
}

// snapshot copies the dense id list so callbacks may add or remove
// components while a query is running.
func (s *sparseSet[T]) snapshot() []slotID {
	out := make([]slotID, len(s.ids))
	copy(out, s.ids)
	return out
}
