package maze

import "fmt"

// Difficulty selects the density of extra shortcut passages carved after
// the spanning tree. Lower density means fewer alternate routes and a
// more maze-like grid.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// densities maps each difficulty to the fraction of cells sampled for
// shortcut injection. The magnitudes are intentionally lopsided: easy
// opens roughly 8% of the grid into shortcuts while medium and hard stay
// near tree-like at 0.2% and 0.1%. These exact values match the observed
// behavior of the reference mazes; do not round them to tidier numbers.
var densities = map[Difficulty]float64{
	Easy:   0.08,
	Medium: 0.002,
	Hard:   0.001,
}

// Difficulties lists the valid labels in menu order.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty validates a difficulty label.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := densities[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
	return d, nil
}

// Density returns the shortcut density for d, zero for unknown labels.
func (d Difficulty) Density() float64 {
	return densities[d]
}
