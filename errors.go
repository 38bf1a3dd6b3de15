package easel

import "errors"

// Errors returned by lower-level helpers. Editor operations never return
// them; they log and report "did nothing" instead.
var (
	// ErrInvalidSize is returned when a canvas dimension is not positive.
	ErrInvalidSize = errors.New("easel: invalid canvas size")

	// ErrUnknownTool is returned by ParseTool for an unrecognized name.
	ErrUnknownTool = errors.New("easel: unknown tool")

	// ErrUnknownShape is returned for a ShapeKind outside the closed set.
	ErrUnknownShape = errors.New("easel: unknown shape kind")

	// ErrDecode is returned when a saved image cannot be decoded.
	ErrDecode = errors.New("easel: cannot decode image")
)
