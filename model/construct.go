package model

import "github.com/pkg/errors"

// Truthy reports whether v differs from the zero value of its type
func Truthy[T comparable](v T) bool {
	var zero T
	return v != zero
}

/*
FromData creates a universe from rows of values.

The universe is as wide as the shortest row and as tall as the number of rows, values past the
shortest row are ignored. A position is alive when isAlive reports true for its value, a nil isAlive
means Truthy.
*/
func FromData[T comparable](rows [][]T, isAlive func(T) bool, boundary Boundary) (*Universe[T], error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrDegenerateInput, "[FromData] no rows")
	}
	width := len(rows[0])
	for _, row := range rows[1:] {
		width = min(width, len(row))
	}
	if width == 0 {
		return nil, errors.Wrap(ErrDegenerateInput, "[FromData] empty row")
	}
	if isAlive == nil {
		isAlive = Truthy[T]
	}

	u, err := New[T](width, len(rows), boundary)
	if err != nil {
		return nil, errors.Wrap(err, "[FromData]")
	}
	for p := range u.Positions() {
		if v := rows[p.Y][p.X]; isAlive(v) {
			u.cells[p] = v
		}
	}
	return u, nil
}

// Random creates a universe calling generate once per position in Positions order, false leaves the position empty
func Random[T comparable](width, height int, boundary Boundary, generate func() (T, bool)) (*Universe[T], error) {
	u, err := New[T](width, height, boundary)
	if err != nil {
		return nil, errors.Wrap(err, "[Random]")
	}
	for p := range u.Positions() {
		if v, ok := generate(); ok {
			u.cells[p] = v
		}
	}
	return u, nil
}
