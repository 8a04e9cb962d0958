package database

import "fmt"

// Any failure of the storage engine while opening, writing or reading.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// A stored date that doesn't conform to DATE_FORMAT.
type DateParseError struct {
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q, expected dd/mm/yyyy", e.Value)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}
