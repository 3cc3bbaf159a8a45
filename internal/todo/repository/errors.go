package repository

import "errors"

// ErrTodoNotFound is returned when no row matches the requested id within
// the caller's scope.
var ErrTodoNotFound = errors.New("todo not found")
