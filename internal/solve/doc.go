// Package solve finds paths through a maze grid.
//
// Two interchangeable strategies implement [Solver]:
//
//   - [BFS]: breadth-first, returns a step-count minimal path
//   - [DFS]: depth-first with an explicit stack, returns the first path
//     found with no optimality guarantee
//
// Both treat only Wall cells as impassable and never report a path when
// the exit is unreachable.
package solve
