package board

import "errors"

// Structural and misuse errors. All are programmer/input errors: they abort
// the operation and are never retried internally.
var (
	ErrDuplicateCoordinate     = errors.New("coordinate appears twice in segment")
	ErrCoordinateOutOfBoard    = errors.New("coordinate is not on the board")
	ErrCoordinateAlreadyFilled = errors.New("coordinate is already filled")
	ErrCoordinateNotFilled     = errors.New("coordinate is not filled")
	ErrInvalidSymbol           = errors.New("symbol is not in the board alphabet")
	ErrSegmentTooLong          = errors.New("segment is longer than the symbol alphabet")
	ErrBadDimensions           = errors.New("board dimensions must be positive")
)
