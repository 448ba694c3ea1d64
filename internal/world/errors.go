package world

import "errors"

var (
	// ErrInvalidBodyCount indicates a negative population size.
	ErrInvalidBodyCount = errors.New("world: body count must not be negative")

	// ErrEmptyPalette indicates there are no colours to draw bodies from.
	ErrEmptyPalette = errors.New("world: palette is empty")
)
