// Package maze provides the grid model and the procedural generator.
//
// The package defines the canonical cell-state grid and the carving
// algorithm that produces it:
//
//   - [Grid]: dense 2D array of [CellState] values, odd dimensions
//   - [Generator]: randomized depth-first carving with difficulty-tuned
//     shortcut injection
//   - [Difficulty]: easy/medium/hard labels selecting shortcut density
//
// # Example
//
//	gen := maze.NewGenerator(maze.Hard, rand.New(rand.NewSource(42)))
//	g, _ := gen.Generate(51, 51)
//
// # Thread Safety
//
// A Grid is mutated only by the Generator during a single Generate call.
// Afterwards it should be treated as read-only; concurrent readers are
// then safe.
package maze
