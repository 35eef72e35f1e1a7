package maze

import "fmt"

// CellState describes the contents of a single grid cell.
type CellState uint8

const (
	Wall CellState = iota
	Passage
	Entry
	Exit
	// Solution is an overlay state used at the solver/presentation
	// boundary. The generator never writes it into a grid.
	Solution
)

func (s CellState) String() string {
	switch s {
	case Wall:
		return "wall"
	case Passage:
		return "passage"
	case Entry:
		return "entry"
	case Exit:
		return "exit"
	case Solution:
		return "solution"
	}
	return fmt.Sprintf("unknown CellState: %d", uint8(s))
}

// Point is a grid coordinate: X spans columns, Y spans rows, (0,0) is
// the top-left corner.
type Point struct {
	X, Y int
}

// Grid is the canonical maze representation: a dense 2D array of cell
// states with immutable dimensions. The zero value of a cell is Wall.
type Grid struct {
	width, height int
	cells         [][]CellState
}

// NewGrid allocates an all-Wall grid. Even dimensions are incremented by
// one so every interior cell aligns on the odd lattice the carver walks.
// Dimensions below 5 (after normalization) cannot hold a border ring plus
// distinct entry and exit cells and are rejected with ErrTooSmall.
func NewGrid(width, height int) (*Grid, error) {
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	if width < 5 || height < 5 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, width, height)
	}
	cells := make([][]CellState, height)
	for y := range cells {
		cells[y] = make([]CellState, width)
	}
	return &Grid{width: width, height: height, cells: cells}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside [0,width) x [0,height).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the state at p. Out-of-range access is a programming error
// and panics.
func (g *Grid) At(p Point) CellState {
	g.check(p)
	return g.cells[p.Y][p.X]
}

// Set writes the state at p. Out-of-range access is a programming error
// and panics.
func (g *Grid) Set(p Point, s CellState) {
	g.check(p)
	g.cells[p.Y][p.X] = s
}

func (g *Grid) check(p Point) {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("maze: coordinate (%d,%d) outside %dx%d grid", p.X, p.Y, g.width, g.height))
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]CellState, g.height)
	for y := range cells {
		cells[y] = make([]CellState, g.width)
		copy(cells[y], g.cells[y])
	}
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Rotate180 point-reflects the grid through its center: row order and
// column order both reverse. Applying it twice restores the original.
func (g *Grid) Rotate180() {
	rotated := make([][]CellState, g.height)
	for y := 0; y < g.height; y++ {
		row := make([]CellState, g.width)
		for x := 0; x < g.width; x++ {
			row[x] = g.cells[g.height-1-y][g.width-1-x]
		}
		rotated[y] = row
	}
	g.cells = rotated
}

// Find scans row-major for the first cell holding s.
func (g *Grid) Find(s CellState) (Point, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == s {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}
