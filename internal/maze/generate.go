package maze

import "math/rand"

// carveDirections are the four 2-step moves of the carving walk, in
// Right, Down, Left, Up order. Shuffled per step before choosing.
var carveDirections = [4]Point{{2, 0}, {0, 2}, {-2, 0}, {0, -2}}

// orthogonal are the four unit moves shared by shortcut injection and
// the solvers.
var orthogonal = [4]Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Generator produces mazes by randomized depth-first carving followed by
// difficulty-tuned shortcut injection. The random source is injected so
// generation is deterministic given a seed.
type Generator struct {
	difficulty Difficulty
	rng        *rand.Rand
}

// NewGenerator builds a generator for the given difficulty and source.
func NewGenerator(difficulty Difficulty, rng *rand.Rand) *Generator {
	return &Generator{difficulty: difficulty, rng: rng}
}

// Generate builds a width x height maze. Even dimensions are normalized
// up by one; degenerate dimensions fail with ErrTooSmall before any
// carving starts. The returned grid always satisfies: all border cells
// Wall, exactly one Entry (top-left interior corner) and one Exit
// (bottom-right interior corner), and Exit reachable from Entry.
func (gen *Generator) Generate(width, height int) (*Grid, error) {
	g, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	gen.carve(g)
	gen.addShortcuts(g)
	placeEndpoints(g)

	// Point-reflect the finished maze, then swap the two endpoint cells
	// so Entry keeps the top-left corner and Exit the bottom-right.
	g.Rotate180()
	entry := Point{1, 1}
	exit := Point{g.width - 2, g.height - 2}
	a, b := g.At(entry), g.At(exit)
	g.Set(entry, b)
	g.Set(exit, a)
	return g, nil
}

// carve runs the iterative depth-first walk over the odd lattice,
// clearing the midpoint wall between each visited pair. The result is a
// spanning tree: exactly one simple path between any two passage cells.
func (gen *Generator) carve(g *Grid) {
	visited := make([][]bool, g.height)
	for y := range visited {
		visited[y] = make([]bool, g.width)
	}

	start := Point{1, 1}
	g.Set(start, Passage)
	visited[start.Y][start.X] = true
	stack := []Point{start}

	dirs := carveDirections
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		gen.rng.Shuffle(len(dirs), func(i, j int) {
			dirs[i], dirs[j] = dirs[j], dirs[i]
		})
		var candidates []Point
		for _, d := range dirs {
			next := Point{cur.X + d.X, cur.Y + d.Y}
			if next.X <= 0 || next.X >= g.width-1 || next.Y <= 0 || next.Y >= g.height-1 {
				continue
			}
			if visited[next.Y][next.X] {
				continue
			}
			candidates = append(candidates, next)
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}
		next := candidates[gen.rng.Intn(len(candidates))]
		mid := Point{(cur.X + next.X) / 2, (cur.Y + next.Y) / 2}
		g.Set(mid, Passage)
		g.Set(next, Passage)
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}
}

// addShortcuts samples floor(width*height*density) interior cells and
// opens any sampled wall that already touches two or more passages,
// creating cycles. Samples stay within [2, dim-3] on both axes, so the
// border ring and the margin just inside it are never opened.
func (gen *Generator) addShortcuts(g *Grid) {
	count := int(float64(g.width*g.height) * gen.difficulty.Density())
	for i := 0; i < count; i++ {
		p := Point{
			X: 2 + gen.rng.Intn(g.width-4),
			Y: 2 + gen.rng.Intn(g.height-4),
		}
		if g.At(p) != Wall {
			continue
		}
		open := 0
		for _, d := range orthogonal {
			if g.At(Point{p.X + d.X, p.Y + d.Y}) != Wall {
				open++
			}
		}
		if open >= 2 {
			g.Set(p, Passage)
		}
	}
}

// placeEndpoints marks the interior corners and force-clears one
// neighbor on each axis of both, so neither endpoint can end up sealed
// by an unlucky shortcut pass.
func placeEndpoints(g *Grid) {
	g.Set(Point{1, 1}, Entry)
	g.Set(Point{g.width - 2, g.height - 2}, Exit)

	g.Set(Point{2, 1}, Passage)
	g.Set(Point{1, 2}, Passage)
	g.Set(Point{g.width - 3, g.height - 2}, Passage)
	g.Set(Point{g.width - 2, g.height - 3}, Passage)
}
