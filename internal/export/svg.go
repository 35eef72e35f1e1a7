package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/solve"
)

var svgFills = map[maze.CellState]string{
	maze.Wall:  "#000000",
	maze.Entry: "#28b446",
	maze.Exit:  "#ff3b30",
}

// SVG renders the grid as an SVG document at cellSize units per cell.
// Passages are left as background; the solution path (when non-nil)
// becomes a polyline through cell centers.
func SVG(g *maze.Grid, path solve.Path, cellSize int) string {
	width := g.Width() * cellSize
	height := g.Height() * cellSize

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, width, height, width, height))

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			fill, ok := svgFills[g.At(maze.Point{X: x, Y: y})]
			if !ok {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>
`, x*cellSize, y*cellSize, cellSize, cellSize, fill))
		}
	}

	if len(path) > 1 {
		points := make([]string, len(path))
		for i, p := range path {
			points[i] = fmt.Sprintf("%d,%d", p.X*cellSize+cellSize/2, p.Y*cellSize+cellSize/2)
		}
		sb.WriteString(fmt.Sprintf(`<polyline points="%s" fill="none" stroke="#0044ff" stroke-width="2"/>
`, strings.Join(points, " ")))
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}
