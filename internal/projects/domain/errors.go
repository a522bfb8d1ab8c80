package domain

import "errors"

var (
	// ErrNotFound is returned when a project does not exist for the caller.
	ErrNotFound = errors.New("project not found")

	// ErrNoAssets is returned when asset generation yields no bundle. The
	// creation workflow aborts before any upload or insert.
	ErrNoAssets = errors.New("failed to generate project assets: no data returned")

	// ErrInvalidInput covers empty owner, name, description or an unknown kind.
	ErrInvalidInput = errors.New("invalid input")
)
