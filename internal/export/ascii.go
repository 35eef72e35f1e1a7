package export

import (
	"strings"

	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/solve"
)

// cell glyphs, two runes wide so terminal cells come out near-square.
const (
	wallGlyph     = "██"
	passageGlyph  = "  "
	entryGlyph    = "S "
	exitGlyph     = " E"
	solutionGlyph = "· "
)

// ASCII renders the grid as text, one two-rune glyph per cell. A non-nil
// path is overlaid on the passages it crosses; endpoint markers stay
// visible underneath it.
func ASCII(g *maze.Grid, path solve.Path) string {
	onPath := make(map[maze.Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var b strings.Builder
	b.Grow((g.Width()*2 + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			switch g.At(p) {
			case maze.Wall:
				b.WriteString(wallGlyph)
			case maze.Entry:
				b.WriteString(entryGlyph)
			case maze.Exit:
				b.WriteString(exitGlyph)
			default:
				if onPath[p] {
					b.WriteString(solutionGlyph)
				} else {
					b.WriteString(passageGlyph)
				}
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
