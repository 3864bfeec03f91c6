package model

// Position is a pair of logical coordinates, before boundary adjustment
type Position struct {
	X, Y int
}

// Cell marks a live position. Its presence is its only state.
type Cell struct{}

// String renders a live cell
func (Cell) String() string { return "*" }
