package types

import "errors"

// Store lifecycle errors.
var (
	ErrStoreClosed     = errors.New("store is closed")
	ErrAlreadyAttached = errors.New("store is already attached")
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// Entity construction and lookup errors. All are sentinel values intended
// for errors.Is; backends wrap them with context where useful.
var (
	ErrNotFound          = errors.New("entity not found")
	ErrInvalidTagName    = errors.New("invalid tag name")
	ErrDuplicateTag      = errors.New("tag name already exists")
	ErrInvalidVisibility = errors.New("invalid visibility value")
	ErrNameEmpty         = errors.New("name must not be empty")
	ErrNameTooLong       = errors.New("name exceeds maximum length")
	ErrBodyEmpty         = errors.New("body must not be empty")
	ErrValidation        = errors.New("validation failed")
)
