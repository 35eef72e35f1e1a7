package export

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/san-kum/mazelab/internal/maze"
	"github.com/san-kum/mazelab/internal/solve"
	"github.com/yalue/image_utils"
)

var cellColors = map[maze.CellState]color.RGBA{
	maze.Wall:    {0, 0, 0, 255},
	maze.Passage: {255, 255, 255, 255},
	maze.Entry:   {0, 255, 0, 255},
	maze.Exit:    {255, 0, 0, 255},
}

var solutionColor = color.RGBA{0, 0, 255, 255}

const borderPixels = 8

// Rasterize draws the grid into an RGBA image at cellSize pixels per
// cell, overlaying the solution path (when non-nil) as connected
// segments through cell centers.
func Rasterize(g *maze.Grid, path solve.Path, cellSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := cellColors[g.At(maze.Point{X: x, Y: y})]
			fillRect(img, x*cellSize, y*cellSize, cellSize, cellSize, c)
		}
	}
	for i := 0; i+1 < len(path); i++ {
		drawSegment(img, path[i], path[i+1], cellSize)
	}
	return img
}

// WritePNG rasterizes the maze, frames it with a white border, and
// writes it to path as a PNG file.
func WritePNG(g *maze.Grid, path solve.Path, cellSize int, filename string) error {
	img := Rasterize(g, path, cellSize)
	framed := image_utils.AddImageBorder(img, color.White, borderPixels)
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, framed)
}

func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

// drawSegment joins the centers of two orthogonally adjacent cells with
// a 2px line.
func drawSegment(img *image.RGBA, a, b maze.Point, cellSize int) {
	ax := a.X*cellSize + cellSize/2
	ay := a.Y*cellSize + cellSize/2
	bx := b.X*cellSize + cellSize/2
	by := b.Y*cellSize + cellSize/2
	if ax > bx {
		ax, bx = bx, ax
	}
	if ay > by {
		ay, by = by, ay
	}
	if ay == by {
		fillRect(img, ax, ay-1, bx-ax+1, 2, solutionColor)
	} else {
		fillRect(img, ax-1, ay, 2, by-ay+1, solutionColor)
	}
}
