package domain

import "errors"

// Client input errors map to 400, ErrNotFound to 404, everything else to 500.
var (
	ErrMissingFields    = errors.New("all fields are required")
	ErrInvalidTypes     = errors.New("invalid data types")
	ErrInvalidRoomShape = errors.New("invalid room data structure")

	ErrNotFound = errors.New("hotel not found")

	ErrStorageRead  = errors.New("record store read failed")
	ErrStorageWrite = errors.New("record store write failed")

	ErrTooManyFiles = errors.New("too many files in upload")
)
