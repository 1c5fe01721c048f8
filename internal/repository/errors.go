package repository

import "errors"

// ErrNotFound is returned (wrapped) when a catalog row does not exist.
var ErrNotFound = errors.New("not found")
