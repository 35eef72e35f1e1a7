package solve

import "github.com/san-kum/mazelab/internal/maze"

// Path is an ordered sequence of grid coordinates from Entry to Exit.
// Consecutive elements differ by exactly one orthogonal unit step and no
// coordinate repeats. A nil or empty Path means no route exists.
type Path []maze.Point

// Steps returns the number of moves along the path (len-1, 0 when empty).
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether pt lies on the path.
func (p Path) Contains(pt maze.Point) bool {
	for _, q := range p {
		if q == pt {
			return true
		}
	}
	return false
}

// endpoints locates the Entry and Exit markers by row-major scan. The
// (1,1) and (width-2,height-2) fallbacks cover grids built by hand
// without markers; generated grids always carry both.
func endpoints(g *maze.Grid) (entry, exit maze.Point) {
	entry = maze.Point{X: 1, Y: 1}
	exit = maze.Point{X: g.Width() - 2, Y: g.Height() - 2}
	if p, ok := g.Find(maze.Entry); ok {
		entry = p
	}
	if p, ok := g.Find(maze.Exit); ok {
		exit = p
	}
	return entry, exit
}

// directions is the shared probe order: Right, Down, Left, Up. BFS path
// length does not depend on it; the DFS-discovered path does.
var directions = [4]maze.Point{{X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 0, Y: -1}}

// walkable reports whether p can be stepped on: in bounds and not Wall.
func walkable(g *maze.Grid, p maze.Point) bool {
	return g.InBounds(p) && g.At(p) != maze.Wall
}

// reconstruct walks the parent links back from exit and reverses.
func reconstruct(parent map[maze.Point]maze.Point, entry, exit maze.Point) Path {
	var rev Path
	for at := exit; ; {
		rev = append(rev, at)
		if at == entry {
			break
		}
		at = parent[at]
	}
	path := make(Path, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
