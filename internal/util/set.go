package util

// Set is a collection of unique keys.
type Set[T comparable] struct {
	data map[T]struct{}
}

func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		data: make(map[T]struct{}, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add reports whether item was newly added.
func (s *Set[T]) Add(item T) bool {
	if _, found := s.data[item]; found {
		return false
	}
	s.data[item] = struct{}{}
	return true
}
