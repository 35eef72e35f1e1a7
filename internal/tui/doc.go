// Package tui provides the interactive terminal front end.
//
// The package implements a two-screen Bubble Tea application:
//
//   - difficulty menu: pick easy/medium/hard or cancel out
//   - maze screen: colored cell rendering with a solution overlay
//
// # Key Bindings
//
//	j/k   - Move the menu cursor
//	Enter - Select difficulty and generate
//	S     - Toggle the solution overlay
//	R     - Regenerate with a fresh seed
//	Esc   - Back to the menu
//	Q     - Quit
//
// The package owns no grid or path mutation; it consumes both read-only.
package tui
