package chart

import "errors"

var (
	ErrInvalidColor      = errors.New("invalid color")
	ErrNegativePieValue  = errors.New("pie values must not be negative")
	ErrZeroPieTotal      = errors.New("pie values sum to zero")
	ErrInvalidDimensions = errors.New("figure dimensions must be positive")
	ErrValueOutOfRange   = errors.New("value is too large to plot")
)
