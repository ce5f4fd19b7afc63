package life

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

// seqSource replays a fixed sequence of draws, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestNewAllDead(t *testing.T) {
	g, err := New(7, 5)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if g.Width() != 7 || g.Height() != 5 {
		t.Fatalf("expected 7x5 grid, got %dx%d", g.Width(), g.Height())
	}
	for c, s := range g.All() {
		if s != Dead {
			t.Fatalf("cell %v = %v, expected Dead", c, s)
		}
	}
	if g.Population() != 0 {
		t.Errorf("Population() = %d, expected 0", g.Population())
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"negative width", -1, 5},
		{"negative height", 5, -3},
		{"cell count overflows", 1 << 32, 1 << 32},
		{"max width", math.MaxInt, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := New(tc.w, tc.h)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New(%d, %d) error = %v, expected ErrInvalidDimensions", tc.w, tc.h, err)
			}
			if g != nil {
				t.Error("expected nil grid on error")
			}
		})
	}
}

func TestNewRandomValidation(t *testing.T) {
	src := rand.New(rand.NewPCG(1, 2))

	for _, p := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		if _, err := NewRandom(4, 4, p, src); !errors.Is(err, ErrInvalidProbability) {
			t.Errorf("NewRandom(p=%v) error = %v, expected ErrInvalidProbability", p, err)
		}
	}
	if _, err := NewRandom(0, 4, 0.5, src); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewRandom(w=0) error = %v, expected ErrInvalidDimensions", err)
	}
}

func TestNewRandomExtremes(t *testing.T) {
	src := rand.New(rand.NewPCG(7, 7))

	empty, err := NewRandom(30, 20, 0, src)
	if err != nil {
		t.Fatalf("NewRandom(p=0) failed: %v", err)
	}
	if empty.Population() != 0 {
		t.Errorf("p=0: Population() = %d, expected 0", empty.Population())
	}

	full, err := NewRandom(30, 20, 1, src)
	if err != nil {
		t.Fatalf("NewRandom(p=1) failed: %v", err)
	}
	if full.Population() != 30*20 {
		t.Errorf("p=1: Population() = %d, expected %d", full.Population(), 30*20)
	}
}

func TestNewRandomDensityConverges(t *testing.T) {
	const w, h = 200, 200
	for _, p := range []float64{0.1, 0.3, 0.5, 0.9} {
		g, err := NewRandom(w, h, p, rand.New(rand.NewPCG(42, uint64(p*100))))
		if err != nil {
			t.Fatalf("NewRandom(p=%v) failed: %v", p, err)
		}
		got := float64(g.Population()) / float64(w*h)
		if math.Abs(got-p) > 0.02 {
			t.Errorf("p=%v: live fraction %.4f outside tolerance", p, got)
		}
	}
}

func TestNewRandomUsesOneDrawPerCell(t *testing.T) {
	src := &seqSource{vals: []float64{0.1, 0.9, 0.5, 0.29}}
	g, err := NewRandom(2, 2, 0.3, src)
	if err != nil {
		t.Fatalf("NewRandom() failed: %v", err)
	}

	want := map[Coord]Status{
		C(0, 0): Alive,
		C(1, 0): Dead,
		C(0, 1): Dead,
		C(1, 1): Alive,
	}
	for c, s := range want {
		got, _ := g.Get(c)
		if got != s {
			t.Errorf("cell %v = %v, expected %v", c, got, s)
		}
	}
	if src.i != 4 {
		t.Errorf("consumed %d draws, expected 4", src.i)
	}
}

func TestNewRandomDeterministicForSeed(t *testing.T) {
	a, _ := NewRandom(40, 30, 0.3, rand.New(rand.NewPCG(99, 0)))
	b, _ := NewRandom(40, 30, 0.3, rand.New(rand.NewPCG(99, 0)))
	if !a.Equal(b) {
		t.Error("same seed should produce identical grids")
	}
}

func TestGetSetOutOfBounds(t *testing.T) {
	g, _ := New(5, 4)

	coords := []Coord{C(-1, 0), C(0, -1), C(5, 0), C(0, 4), C(5, 4), C(100, 100)}
	for _, c := range coords {
		if _, err := g.Get(c); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
		if err := g.Set(c, Alive); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Set(%v) error = %v, expected ErrOutOfBounds", c, err)
		}
	}
	if g.Population() != 0 {
		t.Error("out-of-bounds Set must not change the grid")
	}
}

func TestSetRejectsInvalidStatus(t *testing.T) {
	g, _ := New(3, 3)
	if err := g.Set(C(1, 1), Status(2)); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Set(Status(2)) error = %v, expected ErrInvalidStatus", err)
	}
	if s, _ := g.Get(C(1, 1)); s != Dead {
		t.Errorf("cell changed to %v after rejected Set", s)
	}
}

func TestSetEditIsolation(t *testing.T) {
	g, _ := NewRandom(12, 9, 0.4, rand.New(rand.NewPCG(3, 4)))
	before := g.Clone()

	target := C(5, 6)
	if err := g.Set(target, Alive); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	for c, s := range g.All() {
		if c == target {
			if s != Alive {
				t.Errorf("target %v = %v, expected Alive", c, s)
			}
			continue
		}
		prev, _ := before.Get(c)
		if s != prev {
			t.Errorf("cell %v changed from %v to %v", c, prev, s)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := New(3, 3)
	clone := g.Clone()
	_ = clone.Set(C(0, 0), Alive)

	if s, _ := g.Get(C(0, 0)); s != Dead {
		t.Error("modifying clone should not affect original")
	}
	if g.Equal(clone) {
		t.Error("grids should differ after editing the clone")
	}
}

func TestEqual(t *testing.T) {
	a, _ := New(3, 3)
	b, _ := New(3, 3)
	c, _ := New(3, 4)

	if !a.Equal(b) {
		t.Error("blank grids of the same size should be equal")
	}
	if a.Equal(c) {
		t.Error("grids of different size should not be equal")
	}
	if a.Equal(nil) {
		t.Error("grid should not equal nil")
	}
}

func TestAllVisitsRowMajor(t *testing.T) {
	g, _ := New(3, 2)
	var got []Coord
	for c := range g.All() {
		got = append(got, c)
	}

	want := []Coord{C(0, 0), C(1, 0), C(2, 0), C(0, 1), C(1, 1), C(2, 1)}
	if len(got) != len(want) {
		t.Fatalf("All() yielded %d cells, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	count := 0
	for range g.All() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("early break visited %d cells", count)
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{Dead, "Dead"},
		{Alive, "Alive"},
		{Status(9), "Status(9)"},
	}
	for _, tc := range tests {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("String() = %q, expected %q", got, tc.want)
		}
	}
}
