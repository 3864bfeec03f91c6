package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestFromDataJagged(t *testing.T) {
	for _, b := range []Boundary{Bounded{}, Wrapped{}} {
		u, err := FromData([][]int{{0, 1}, {2, 3, 4}}, nil, b)
		if err != nil {
			t.Fatalf("%s: FromData err = %v", b.Name(), err)
		}
		if u.Width() != 2 || u.Height() != 2 {
			t.Fatalf("%s: dimensions = %dx%d, want 2x2", b.Name(), u.Width(), u.Height())
		}

		want := map[Position]int{{1, 0}: 1, {0, 1}: 2, {1, 1}: 3}
		if u.Len() != len(want) {
			t.Fatalf("%s: Len = %d, want %d", b.Name(), u.Len(), len(want))
		}
		for p, w := range want {
			if v, ok, _ := u.Get(p.X, p.Y); !ok || v != w {
				t.Errorf("%s: Get(%v) = %v, %v, want %v", b.Name(), p, v, ok, w)
			}
		}
		if ok, _ := u.Alive(0, 0); ok {
			t.Errorf("%s: zero value became alive", b.Name())
		}
	}

	// the value past the short row belongs to no position
	u, _ := FromData([][]int{{1, 2}, {3, 0, 5}}, nil, Bounded{})
	if _, _, err := u.Get(2, 1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Get(2, 1) err = %v, want ErrOutOfRange", err)
	}
	w, _ := FromData([][]int{{1, 2}, {3, 0, 5}}, nil, Wrapped{})
	if v, _, _ := w.Get(2, 1); v != 3 {
		t.Fatalf("wrapped Get(2, 1) = %v, want 3", v)
	}
}

func TestFromDataPredicate(t *testing.T) {
	u, err := FromData([][]string{{"0", "*"}, {"2", "*", "*"}}, func(s string) bool { return s == "*" }, Wrapped{})
	if err != nil {
		t.Fatalf("FromData err = %v", err)
	}
	if u.Width() != 2 || u.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", u.Width(), u.Height())
	}
	if ok, _ := u.Alive(0, 0); ok {
		t.Error("(0, 0) is alive")
	}
	if v, ok, _ := u.Get(1, 0); !ok || v != "*" {
		t.Errorf("Get(1, 0) = %q, %v", v, ok)
	}
	if ok, _ := u.Alive(0, 1); ok {
		t.Error("(0, 1) is alive")
	}
	if v, ok, _ := u.Get(1, 1); !ok || v != "*" {
		t.Errorf("Get(1, 1) = %q, %v", v, ok)
	}
}

func TestFromDataDegenerate(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"no rows", nil},
		{"empty row", [][]int{{}}},
		{"shortest row empty", [][]int{{1, 2}, {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromData(tt.rows, nil, Bounded{}); !errors.Is(err, ErrDegenerateInput) {
				t.Fatalf("err = %v, want ErrDegenerateInput", err)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	if Truthy(0) || !Truthy(1) {
		t.Error("Truthy(int) is wrong")
	}
	if Truthy("") || !Truthy("x") {
		t.Error("Truthy(string) is wrong")
	}
	var p *int
	if Truthy(p) {
		t.Error("Truthy(nil pointer) = true")
	}
	if Truthy(Cell{}) {
		t.Error("Truthy(Cell{}) = true, Cell always needs an explicit predicate")
	}
}

func TestRandom(t *testing.T) {
	u, err := Random(2, 2, Wrapped{}, func() (int, bool) { return 1, true })
	if err != nil {
		t.Fatalf("Random err = %v", err)
	}
	if u.Width() != 2 || u.Height() != 2 || u.Len() != 4 {
		t.Fatalf("Random = %dx%d with %d cells", u.Width(), u.Height(), u.Len())
	}

	var calls []int
	n := 0
	u, _ = Random(3, 2, Bounded{}, func() (int, bool) {
		n++
		calls = append(calls, n)
		return n, n%2 == 0
	})
	if len(calls) != 6 {
		t.Fatalf("generator called %d times, want 6", len(calls))
	}
	// calls follow Positions order so even calls land on (1,0), (0,1), (2,1)
	for p, want := range map[Position]int{{1, 0}: 2, {0, 1}: 4, {2, 1}: 6} {
		if v, ok, _ := u.Get(p.X, p.Y); !ok || v != want {
			t.Errorf("Get(%v) = %v, %v, want %v", p, v, ok, want)
		}
	}
	if u.Len() != 3 {
		t.Fatalf("Len = %d, want 3", u.Len())
	}

	if _, err = Random(0, 2, Bounded{}, func() (int, bool) { return 1, true }); !errors.Is(err, ErrInvalidDimension) {
		t.Fatalf("err = %v, want ErrInvalidDimension", err)
	}
}

func TestLikelyIsDeterministic(t *testing.T) {
	a, _ := Random(16, 16, Wrapped{}, Likely(NewRand(42), 0.5))
	b, _ := Random(16, 16, Wrapped{}, Likely(NewRand(42), 0.5))
	if !a.Equal(b) {
		t.Fatal("same seed produced different universes")
	}

	none, _ := Random(8, 8, Wrapped{}, Likely(NewRand(1), 0))
	if none.Len() != 0 {
		t.Fatalf("density 0 produced %d cells", none.Len())
	}
	all, _ := Random(8, 8, Wrapped{}, Likely(NewRand(1), 1))
	if all.Len() != 64 {
		t.Fatalf("density 1 produced %d cells, want 64", all.Len())
	}
}
