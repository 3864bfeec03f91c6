package model

import "testing"

func TestString(t *testing.T) {
	for _, b := range []Boundary{Bounded{}, Wrapped{}} {
		u := mustFromData(t, [][]int{{0, 3}, {2, 0}}, b)
		if got, want := u.String(), "  3\n2  "; got != want {
			t.Errorf("%s: String = %q, want %q", b.Name(), got, want)
		}
	}
}

func TestStringCells(t *testing.T) {
	u, _ := New[Cell](3, 2, Wrapped{})
	_ = u.Set(0, 0, Cell{})
	_ = u.Set(2, 1, Cell{})

	if got, want := u.String(), "*    \n    *"; got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestFormatJustify(t *testing.T) {
	u := mustFromData(t, [][]int{{10, 0}, {0, 7}}, Bounded{})
	if got, want := u.Format(3), "10     \n    7  "; got != want {
		t.Fatalf("Format(3) = %q, want %q", got, want)
	}
	if u.Format(0) != u.String() {
		t.Fatal("Format(0) differs from String")
	}
}

func TestHash(t *testing.T) {
	a := mustFromData(t, [][]int{{1, 0}, {0, 1}}, Wrapped{})
	b := mustFromData(t, [][]int{{1, 0}, {0, 1}}, Wrapped{})
	if a.Hash() != b.Hash() {
		t.Fatal("equal universes hash differently")
	}

	c := mustFromData(t, [][]int{{0, 1}, {1, 0}}, Wrapped{})
	if a.Hash() == c.Hash() {
		t.Fatal("different universes share a hash")
	}

	// same first cells, different shape
	d := mustFromData(t, [][]int{{1, 0, 0, 1}}, Wrapped{})
	if a.Hash() == d.Hash() {
		t.Fatal("different dimensions share a hash")
	}
}
