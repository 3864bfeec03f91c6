package model

import (
	"iter"

	"github.com/pkg/errors"
)

// neighborOffsets walks around a position clockwise starting at the upper left
var neighborOffsets = [8]Position{
	{-1, -1}, // NE
	{0, -1},  // N
	{1, -1},  // NW
	{1, 0},   // W
	{1, 1},   // SW
	{0, 1},   // S
	{-1, 1},  // SE
	{-1, 0},  // E
}

// Universe is a sparse field of cells, only live positions take memory
type Universe[T comparable] struct {
	width    int
	height   int
	boundary Boundary
	cells    map[Position]T
}

// New creates an empty universe with the specified dimensions, a nil boundary means Bounded
func New[T comparable](width, height int, boundary Boundary) (*Universe[T], error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[New] %dx%d", width, height)
	}
	if boundary == nil {
		boundary = Bounded{}
	}
	return &Universe[T]{
		width:    width,
		height:   height,
		boundary: boundary,
		cells:    make(map[Position]T),
	}, nil
}

// Width returns the width of the universe
func (u *Universe[T]) Width() int {
	return u.width
}

// Height returns the height of the universe
func (u *Universe[T]) Height() int {
	return u.height
}

// Boundary returns the boundary policy of the universe
func (u *Universe[T]) Boundary() Boundary {
	return u.boundary
}

// Len returns the number of live cells
func (u *Universe[T]) Len() int {
	return len(u.cells)
}

func (u *Universe[T]) normalize(x, y int) (Position, error) {
	return u.boundary.Normalize(x, y, u.width, u.height)
}

// Get returns the value at x, y and whether the position is alive
func (u *Universe[T]) Get(x, y int) (value T, ok bool, err error) {
	p, err := u.normalize(x, y)
	if err != nil {
		return value, false, errors.Wrap(err, "[Get]")
	}
	value, ok = u.cells[p]
	return value, ok, nil
}

// Alive reports whether the position at x, y holds a cell
func (u *Universe[T]) Alive(x, y int) (bool, error) {
	_, ok, err := u.Get(x, y)
	return ok, err
}

// Set places value at x, y
func (u *Universe[T]) Set(x, y int, value T) error {
	p, err := u.normalize(x, y)
	if err != nil {
		return errors.Wrap(err, "[Set]")
	}
	u.cells[p] = value
	return nil
}

// Delete empties the position at x, y, deleting an empty position does nothing
func (u *Universe[T]) Delete(x, y int) error {
	p, err := u.normalize(x, y)
	if err != nil {
		return errors.Wrap(err, "[Delete]")
	}
	delete(u.cells, p)
	return nil
}

// Positions iterates all positions row by row, top to bottom and left to right
func (u *Universe[T]) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := range u.height {
			for x := range u.width {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// NeighborPositions iterates the positions around x, y that exist under the boundary policy.
// The positions are not normalized.
func (u *Universe[T]) NeighborPositions(x, y int) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, d := range neighborOffsets {
			nx, ny := x+d.X, y+d.Y
			if !u.boundary.InRange(nx, ny, u.width, u.height) {
				continue
			}
			if !yield(Position{X: nx, Y: ny}) {
				return
			}
		}
	}
}

// Neighbors iterates the values around x, y in NeighborPositions order, empty neighbors yield false
func (u *Universe[T]) Neighbors(x, y int) iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for p := range u.NeighborPositions(x, y) {
			// InRange already held, Normalize cannot fail here
			n, _ := u.normalize(p.X, p.Y)
			v, ok := u.cells[n]
			if !yield(v, ok) {
				return
			}
		}
	}
}

// Rows iterates the universe one row at a time
func (u *Universe[T]) Rows() iter.Seq2[int, iter.Seq2[T, bool]] {
	return func(yield func(int, iter.Seq2[T, bool]) bool) {
		for y := range u.height {
			if !yield(y, u.row(y)) {
				return
			}
		}
	}
}

func (u *Universe[T]) row(y int) iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		for x := range u.width {
			v, ok := u.cells[Position{X: x, Y: y}]
			if !yield(v, ok) {
				return
			}
		}
	}
}

// Cells iterates the live cells in Positions order
func (u *Universe[T]) Cells() iter.Seq2[Position, T] {
	return func(yield func(Position, T) bool) {
		if len(u.cells) == 0 {
			return
		}
		for p := range u.Positions() {
			v, ok := u.cells[p]
			if !ok {
				continue
			}
			if !yield(p, v) {
				return
			}
		}
	}
}

// EmptyCopy returns a universe of the same dimensions and boundary with no cells
func (u *Universe[T]) EmptyCopy() *Universe[T] {
	return &Universe[T]{
		width:    u.width,
		height:   u.height,
		boundary: u.boundary,
		cells:    make(map[Position]T),
	}
}

// Clone returns a copy of the universe with its own storage
func (u *Universe[T]) Clone() *Universe[T] {
	c := u.EmptyCopy()
	for p, v := range u.cells {
		c.cells[p] = v
	}
	return c
}

// Equal reports whether both universes have the same dimensions, boundary and cells
func (u *Universe[T]) Equal(other *Universe[T]) bool {
	if u == nil || other == nil {
		return u == other
	}
	if u.width != other.width || u.height != other.height || u.boundary.Name() != other.boundary.Name() {
		return false
	}
	if len(u.cells) != len(other.cells) {
		return false
	}
	for p, v := range u.cells {
		if ov, ok := other.cells[p]; !ok || ov != v {
			return false
		}
	}
	return true
}

// BoundingBox returns the smallest rectangle holding every live cell, ok is false for an empty universe
func (u *Universe[T]) BoundingBox() (minPos, maxPos Position, ok bool) {
	for p := range u.cells {
		if !ok {
			minPos, maxPos, ok = p, p, true
			continue
		}
		minPos.X = min(minPos.X, p.X)
		minPos.Y = min(minPos.Y, p.Y)
		maxPos.X = max(maxPos.X, p.X)
		maxPos.Y = max(maxPos.Y, p.Y)
	}
	return
}

// BoundingBoxSize returns the area of the active region
func (u *Universe[T]) BoundingBoxSize() int {
	minPos, maxPos, ok := u.BoundingBox()
	if !ok {
		return 0
	}
	return (maxPos.X - minPos.X + 1) * (maxPos.Y - minPos.Y + 1)
}
