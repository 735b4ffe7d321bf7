// Package sparse provides a sparse set data structure for efficient
// membership testing over a small, dense universe of integer keys.
//
// A sparse set supports O(1) insertion, membership testing, and clearing
// while never touching more memory than the number of elements actually
// inserted. It is used by internal/engine to track which ThreadIds have
// already produced a thread in the current generation, so that duplicate
// Live threads are dropped rather than re-explored.
package sparse

// Set is a set of uint32 values (ThreadIds) supporting O(1) operations.
// It maintains a sparse array (membership testing) and relies on the
// caller for iteration order — callers that need priority order keep their
// own ordered thread list and use Set purely as a gate.
type Set struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// New creates a set over the universe [0, capacity).
func New(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds value to the set. Returns true if it was newly inserted,
// false if it was already present.
func (s *Set) Insert(value uint32) bool {
	if s.Contains(value) {
		return false
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
	return true
}

// Contains reports whether value is in the set.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1) time without releasing backing arrays.
func (s *Set) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Len returns the number of elements currently in the set.
func (s *Set) Len() int {
	return int(s.size)
}
