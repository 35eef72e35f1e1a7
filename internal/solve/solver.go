package solve

import "github.com/san-kum/mazelab/internal/maze"

// Solver finds a route from the grid's Entry to its Exit. Solve returns
// (nil, false) when no route exists; it never fails otherwise. The grid
// is read-only to the solver.
type Solver interface {
	Name() string
	Solve(g *maze.Grid) (Path, bool)
}

// BFS explores by increasing step count, so the first path that reaches
// the exit is step-count minimal.
type BFS struct{}

func NewBFS() *BFS { return &BFS{} }

func (*BFS) Name() string { return "bfs" }

func (*BFS) Solve(g *maze.Grid) (Path, bool) {
	entry, exit := endpoints(g)

	parent := make(map[maze.Point]maze.Point)
	visited := map[maze.Point]bool{entry: true}
	queue := []maze.Point{entry}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == exit {
			return reconstruct(parent, entry, exit), true
		}
		for _, d := range directions {
			next := maze.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !walkable(g, next) || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}
	return nil, false
}

// DFS explores greedily with an explicit stack, backtracking on dead
// ends. Visited cells are tracked globally, not just along the current
// branch, so the walk terminates on grids with cycles. The returned path
// is the first one discovered and carries no optimality guarantee.
type DFS struct{}

func NewDFS() *DFS { return &DFS{} }

func (*DFS) Name() string { return "dfs" }

func (*DFS) Solve(g *maze.Grid) (Path, bool) {
	entry, exit := endpoints(g)

	parent := make(map[maze.Point]maze.Point)
	visited := map[maze.Point]bool{entry: true}
	stack := []maze.Point{entry}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == exit {
			return reconstruct(parent, entry, exit), true
		}
		// Push in reverse so the first direction is probed first.
		for i := len(directions) - 1; i >= 0; i-- {
			d := directions[i]
			next := maze.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !walkable(g, next) || visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			stack = append(stack, next)
		}
	}
	return nil, false
}

// ByName returns the solver for a strategy label, defaulting to BFS.
func ByName(name string) Solver {
	if name == "dfs" {
		return NewDFS()
	}
	return NewBFS()
}
