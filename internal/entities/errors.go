package entities

import "errors"

// ErrNotFound is returned when an operation references an id absent in a store.
// The store state is left untouched.
var ErrNotFound = errors.New("not found")

// ErrEmpty is returned when submitted text is empty or contains only whitespaces.
var ErrEmpty = errors.New("empty text")
