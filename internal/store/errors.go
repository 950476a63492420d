package store

import "errors"

// Sentinel errors returned by the file storages. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyFileName is returned when a file to be saved carries no usable
	// base name.
	ErrEmptyFileName = errors.New("empty file name")

	// ErrNotRegularFile is returned when a selected path exists but is a
	// directory or another special file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrTooManyDuplicates is returned when no free " (n)" name could be
	// found for a download.
	ErrTooManyDuplicates = errors.New("too many files with the same name")
)
