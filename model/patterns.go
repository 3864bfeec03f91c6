package model

import (
	"sort"

	"github.com/pkg/errors"
)

// patterns are well known layouts, 1 is a live cell
var patterns = map[string][][]int{
	"block": {
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
	},
	"blinker": {
		{0, 1, 0},
		{0, 1, 0},
		{0, 1, 0},
	},
	"toad": {
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
	},
	"loaf": {
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	},
	"beacon": {
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	},
	"glider": {
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	},
}

// Pattern returns a copy of the named layout
func Pattern(name string) ([][]int, error) {
	p, ok := patterns[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPattern, "[Pattern] %q, want one of %v", name, PatternNames())
	}
	rows := make([][]int, len(p))
	for i, row := range p {
		rows[i] = append([]int(nil), row...)
	}
	return rows, nil
}

// PatternNames lists the known pattern names sorted
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp writes value at every live position of rows, offset by startX, startY
func Stamp[T comparable](u *Universe[T], rows [][]int, startX, startY int, value T) error {
	for y, row := range rows {
		for x, v := range row {
			if v == 0 {
				continue
			}
			if err := u.Set(startX+x, startY+y, value); err != nil {
				return errors.Wrap(err, "[Stamp]")
			}
		}
	}
	return nil
}
