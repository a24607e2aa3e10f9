package lesson

import "errors"

// Common errors.
var (
	ErrNotFound   = errors.New("lesson not found")
	ErrDuplicate  = errors.New("lesson already registered")
	ErrBadPattern = errors.New("invalid lesson pattern")
)
