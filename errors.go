package hashmap

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when an operation is called on a nil
	// or closed table, or with a nil key or entry.
	ErrInvalidArgument = errors.New("hashmap: invalid argument")

	// ErrDuplicateKey is returned by Insert when the key is already
	// present. The table is not modified.
	ErrDuplicateKey = errors.New("hashmap: duplicate key")

	// ErrNotFound is returned by Erase when the key is not present.
	ErrNotFound = errors.New("hashmap: key not found")

	// ErrAllocation is returned when a slot array cannot be allocated, or
	// by Insert when the table is full and could not be grown.
	ErrAllocation = errors.New("hashmap: allocation failed")
)
