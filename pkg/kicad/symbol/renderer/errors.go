package renderer

import "errors"

var (
	// ErrUnsupportedDraw is returned for a draw primitive the renderer has no
	// representation for.
	ErrUnsupportedDraw = errors.New("unsupported draw type")

	// ErrUnsupportedOrientation is returned for a pin whose orientation is
	// not one of R, L, U, D.
	ErrUnsupportedOrientation = errors.New("unsupported pin orientation")
)
