package maze

import "errors"

// Domain errors for grid construction and generation.
var (
	// ErrTooSmall indicates dimensions that cannot hold a border ring
	// plus distinct entry and exit cells.
	ErrTooSmall = errors.New("maze: dimensions too small (minimum 5x5 after odd normalization)")

	// ErrUnknownDifficulty indicates an unrecognized difficulty label.
	ErrUnknownDifficulty = errors.New("maze: unknown difficulty")
)
