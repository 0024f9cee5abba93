package wfc

import (
	"github.com/glidepath/worldgen/internal/terrain"
)

// Cell is one grid position on the unbounded terrain grid.
type Cell struct {
	X int
	Z int
}

// Neighbors returns the four cardinal neighbors in a fixed order.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{c.X + 1, c.Z},
		{c.X - 1, c.Z},
		{c.X, c.Z + 1},
		{c.X, c.Z - 1},
	}
}

// DirectionBetween computes the cardinal direction from src toward dst.
// Pairs that are not unit cardinal offsets report ok=false.
func DirectionBetween(src, dst Cell) (terrain.Direction, bool) {
	dx := dst.X - src.X
	dz := dst.Z - src.Z
	switch {
	case dx == 1 && dz == 0:
		return terrain.East, true
	case dx == -1 && dz == 0:
		return terrain.West, true
	case dx == 0 && dz == 1:
		return terrain.North, true
	case dx == 0 && dz == -1:
		return terrain.South, true
	}
	return 0, false
}

// WorldState owns all generation state: the possibility set of every cell in
// an initialized chunk, the final kind of every resolved cell, and the cells
// that were force-resolved after a contradiction. A resolved cell is
// immutable for the lifetime of the process. State is never reclaimed, even
// for chunks outside the active set.
type WorldState struct {
	possible map[Cell]terrain.KindSet
	resolved map[Cell]terrain.Kind
	forced   map[Cell]bool
}

// NewWorldState creates empty generation state.
func NewWorldState() *WorldState {
	return &WorldState{
		possible: make(map[Cell]terrain.KindSet),
		resolved: make(map[Cell]terrain.Kind),
		forced:   make(map[Cell]bool),
	}
}

// KindAt returns the resolved kind of a cell, if it has one.
func (s *WorldState) KindAt(c Cell) (terrain.Kind, bool) {
	k, ok := s.resolved[c]
	return k, ok
}

// PossibleAt returns the possibility set of a cell in an initialized chunk.
func (s *WorldState) PossibleAt(c Cell) (terrain.KindSet, bool) {
	set, ok := s.possible[c]
	return set, ok
}

// Forced reports whether the cell was resolved by the contradiction
// fallback rather than by sampling.
func (s *WorldState) Forced(c Cell) bool {
	return s.forced[c]
}

// ResolvedCount returns the number of resolved cells across all chunks.
func (s *WorldState) ResolvedCount() int {
	return len(s.resolved)
}

func (s *WorldState) setResolved(c Cell, k terrain.Kind) {
	s.resolved[c] = k
	s.possible[c] = terrain.NewKindSet(k)
}
