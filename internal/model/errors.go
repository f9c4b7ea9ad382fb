package model

import "errors"

// Domain error kinds. Repositories and services wrap these with %w; the API
// layer maps them to status codes with errors.Is.
var (
	// ErrNotFound means the referenced user, tweet or follow edge does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a uniqueness constraint was violated, e.g. a duplicate
	// email at registration or a duplicate follow edge.
	ErrConflict = errors.New("already exists")
	// ErrValidation means the input is malformed, e.g. an empty tweet body.
	ErrValidation = errors.New("invalid input")
	// ErrForbidden means the actor does not own the entity it tries to mutate.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized means the caller's credentials or session are not valid.
	ErrUnauthorized = errors.New("unauthorized")
)
