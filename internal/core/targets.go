package core

// TargetSet is the set of dirty cells still to be cleaned. It is shared
// by every agent in a run and shrinks whenever any agent cleans. Iteration
// order is insertion order and removal preserves it, so target scans stay
// deterministic under a fixed seed.
type TargetSet struct {
	order []Coord
	index map[Coord]int
}

// NewTargetSet creates an empty target set.
func NewTargetSet() *TargetSet {
	return &TargetSet{index: make(map[Coord]int)}
}

// Add inserts c if not already present.
func (s *TargetSet) Add(c Coord) {
	if _, ok := s.index[c]; ok {
		return
	}
	s.index[c] = len(s.order)
	s.order = append(s.order, c)
}

// Contains reports whether c is still dirty.
func (s *TargetSet) Contains(c Coord) bool {
	_, ok := s.index[c]
	return ok
}

// Remove deletes c, returning false if it was not present.
func (s *TargetSet) Remove(c Coord) bool {
	i, ok := s.index[c]
	if !ok {
		return false
	}
	s.order = append(s.order[:i], s.order[i+1:]...)
	delete(s.index, c)
	for j := i; j < len(s.order); j++ {
		s.index[s.order[j]] = j
	}
	return true
}

// Len returns the number of live targets.
func (s *TargetSet) Len() int {
	return len(s.order)
}

// Coords returns the live targets in iteration order. The slice is a copy.
func (s *TargetSet) Coords() []Coord {
	out := make([]Coord, len(s.order))
	copy(out, s.order)
	return out
}
