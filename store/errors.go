package store

import "errors"

// ErrKeyNotFound for missing key.
var ErrKeyNotFound = errors.New("KeyNotFound")
