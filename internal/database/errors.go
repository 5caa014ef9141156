package database

import "errors"

// ErrNotFound is returned by the stores when a lookup matches no document.
var ErrNotFound = errors.New("document not found")
