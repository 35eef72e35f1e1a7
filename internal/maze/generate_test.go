package maze

import (
	"math/rand"
	"testing"
)

func generate(t *testing.T, w, h int, d Difficulty, seed int64) *Grid {
	t.Helper()
	g, err := NewGenerator(d, rand.New(rand.NewSource(seed))).Generate(w, h)
	if err != nil {
		t.Fatalf("generate %dx%d %s: %v", w, h, d, err)
	}
	return g
}

func TestGenerateRejectsDegenerateDimensions(t *testing.T) {
	gen := NewGenerator(Hard, rand.New(rand.NewSource(1)))
	if _, err := gen.Generate(2, 2); err == nil {
		t.Error("expected error for 2x2")
	}
	if _, err := gen.Generate(-5, 9); err == nil {
		t.Error("expected error for negative width")
	}
}

func TestBorderCellsAreWalls(t *testing.T) {
	for _, d := range Difficulties() {
		for seed := int64(0); seed < 5; seed++ {
			g := generate(t, 15, 9, d, seed)
			for x := 0; x < g.Width(); x++ {
				if g.At(Point{x, 0}) != Wall || g.At(Point{x, g.Height() - 1}) != Wall {
					t.Fatalf("%s seed %d: border breach in column %d", d, seed, x)
				}
			}
			for y := 0; y < g.Height(); y++ {
				if g.At(Point{0, y}) != Wall || g.At(Point{g.Width() - 1, y}) != Wall {
					t.Fatalf("%s seed %d: border breach in row %d", d, seed, y)
				}
			}
		}
	}
}

func TestExactlyOneEntryAndExit(t *testing.T) {
	for _, d := range Difficulties() {
		for seed := int64(0); seed < 5; seed++ {
			g := generate(t, 21, 21, d, seed)
			entries, exits := 0, 0
			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					switch g.At(Point{x, y}) {
					case Entry:
						entries++
					case Exit:
						exits++
					}
				}
			}
			if entries != 1 {
				t.Errorf("%s seed %d: expected 1 entry, got %d", d, seed, entries)
			}
			if exits != 1 {
				t.Errorf("%s seed %d: expected 1 exit, got %d", d, seed, exits)
			}
		}
	}
}

func TestEndpointsAtCorners(t *testing.T) {
	g := generate(t, 51, 31, Medium, 7)
	if s := g.At(Point{1, 1}); s != Entry {
		t.Errorf("expected entry at (1,1), got %s", s)
	}
	if s := g.At(Point{g.Width() - 2, g.Height() - 2}); s != Exit {
		t.Errorf("expected exit at bottom-right interior corner, got %s", s)
	}
}

func TestEndpointsHaveOpenNeighbors(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g := generate(t, 11, 11, Hard, seed)
		entry, _ := g.Find(Entry)
		exit, _ := g.Find(Exit)
		for _, p := range []Point{entry, exit} {
			open := 0
			for _, d := range orthogonal {
				n := Point{p.X + d.X, p.Y + d.Y}
				if g.InBounds(n) && g.At(n) != Wall {
					open++
				}
			}
			if open == 0 {
				t.Errorf("seed %d: endpoint %v is sealed", seed, p)
			}
		}
	}
}

// Connectivity is stronger than entry-to-exit reachability: neither
// carving, shortcut injection, nor endpoint placement may leave an
// isolated passage pocket anywhere in the grid.
func TestEveryOpenCellReachableFromEntry(t *testing.T) {
	for _, d := range Difficulties() {
		for seed := int64(0); seed < 8; seed++ {
			g := generate(t, 31, 21, d, seed)
			entry, ok := g.Find(Entry)
			if !ok {
				t.Fatalf("%s seed %d: no entry", d, seed)
			}

			open := 0
			for y := 0; y < g.Height(); y++ {
				for x := 0; x < g.Width(); x++ {
					if g.At(Point{x, y}) != Wall {
						open++
					}
				}
			}

			visited := map[Point]bool{entry: true}
			queue := []Point{entry}
			reached := 0
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				reached++
				for _, dir := range orthogonal {
					next := Point{cur.X + dir.X, cur.Y + dir.Y}
					if !g.InBounds(next) || visited[next] || g.At(next) == Wall {
						continue
					}
					visited[next] = true
					queue = append(queue, next)
				}
			}

			if reached != open {
				t.Errorf("%s seed %d: flood fill reached %d of %d open cells", d, seed, reached, open)
			}
		}
	}
}

func TestGenerateDeterministicGivenSeed(t *testing.T) {
	a := generate(t, 31, 31, Easy, 99)
	b := generate(t, 31, 31, Easy, 99)
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			p := Point{x, y}
			if a.At(p) != b.At(p) {
				t.Fatalf("grids diverge at (%d,%d): %s != %s", x, y, a.At(p), b.At(p))
			}
		}
	}
}

// Shortcut injection samples only [2, dim-3], so the border ring and the
// margin just inside it must come out of addShortcuts untouched.
func TestShortcutsRespectMargin(t *testing.T) {
	g, _ := NewGrid(11, 11)
	for y := 3; y <= 7; y++ {
		for x := 3; x <= 7; x++ {
			g.Set(Point{x, y}, Passage)
		}
	}
	gen := NewGenerator(Easy, rand.New(rand.NewSource(3)))
	for i := 0; i < 50; i++ {
		gen.addShortcuts(g)
	}
	for i := 0; i < 11; i++ {
		for _, p := range []Point{{i, 0}, {i, 1}, {i, 9}, {i, 10}, {0, i}, {1, i}, {9, i}, {10, i}} {
			if g.At(p) != Wall {
				t.Fatalf("margin cell %v opened by shortcut injection", p)
			}
		}
	}
}

func TestPlaceEndpointsMinimumGrid(t *testing.T) {
	g, _ := NewGrid(5, 5)
	placeEndpoints(g)

	if s := g.At(Point{1, 1}); s != Entry {
		t.Errorf("expected entry at (1,1), got %s", s)
	}
	if s := g.At(Point{3, 3}); s != Exit {
		t.Errorf("expected exit at (3,3), got %s", s)
	}
	for _, p := range []Point{{2, 1}, {1, 2}, {2, 3}, {3, 2}} {
		if s := g.At(p); s != Passage {
			t.Errorf("expected forced passage at %v, got %s", p, s)
		}
	}
}

func TestGenerateMinimumMaze(t *testing.T) {
	g := generate(t, 5, 5, Hard, 11)
	if s := g.At(Point{1, 1}); s != Entry {
		t.Errorf("expected entry at (1,1), got %s", s)
	}
	if s := g.At(Point{3, 3}); s != Exit {
		t.Errorf("expected exit at (3,3), got %s", s)
	}
}
