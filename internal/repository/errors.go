package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrExists is returned when a create or rename target already exists
	ErrExists = errors.New("already exists")

	// ErrInvalidPath is returned when a file path escapes the project files root
	ErrInvalidPath = errors.New("invalid path")
)
