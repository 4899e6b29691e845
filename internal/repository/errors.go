package repository

import "errors"

// ErrNotFound is wrapped by every single-row lookup that matches nothing.
var ErrNotFound = errors.New("not found")
