package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientCapacity indicates that a seat claim asked for more seats
// than the trip currently has available. No partial claim is ever made.
var ErrInsufficientCapacity = errors.New("insufficient seat capacity")
