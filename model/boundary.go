package model

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	BoundedName = "bounded"
	WrappedName = "wrapped"
)

// Boundary decides how a position relates to the edges of a width x height field
type Boundary interface {
	// Name returns the policy identifier used in configuration
	Name() string
	// Normalize maps a position into [0,width)x[0,height) or fails with ErrOutOfRange
	Normalize(x, y, width, height int) (Position, error)
	// InRange reports whether Normalize would succeed
	InRange(x, y, width, height int) bool
}

// Bounded is a field with hard edges, positions past them do not exist
type Bounded struct{}

func (Bounded) Name() string { return BoundedName }

func (b Bounded) Normalize(x, y, width, height int) (Position, error) {
	if !b.InRange(x, y, width, height) {
		return Position{}, errors.Wrapf(ErrOutOfRange, "(%d, %d) outside %dx%d", x, y, width, height)
	}
	return Position{X: x, Y: y}, nil
}

func (Bounded) InRange(x, y, width, height int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}

// Wrapped is a toroidal field, the top edge joins the bottom and the left edge joins the right
type Wrapped struct{}

func (Wrapped) Name() string { return WrappedName }

func (Wrapped) Normalize(x, y, width, height int) (Position, error) {
	return Position{X: wrap(x, width), Y: wrap(y, height)}, nil
}

func (Wrapped) InRange(_, _, _, _ int) bool { return true }

// wrap is a modulo that stays non-negative for negative v
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

var boundaries = map[string]Boundary{
	BoundedName: Bounded{},
	WrappedName: Wrapped{},
}

// BoundaryFromName resolves a policy by its configuration name
func BoundaryFromName(name string) (Boundary, error) {
	b, ok := boundaries[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBoundary, "[BoundaryFromName] %q, want one of %v", name, BoundaryNames())
	}
	return b, nil
}

// BoundaryNames lists the known policy names sorted
func BoundaryNames() []string {
	names := make([]string, 0, len(boundaries))
	for name := range boundaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
