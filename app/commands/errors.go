package commands

import "github.com/pkg/errors"

var (
	// ErrMissingArgument is returned when a required name was not supplied.
	ErrMissingArgument = errors.New("missing argument")
	// ErrInvalidName is returned for names that cannot be PHP class names.
	ErrInvalidName = errors.New("invalid class name")
	// ErrTargetFileNotFound is returned when the events file does not exist.
	ErrTargetFileNotFound = errors.New("events file not found")
	// ErrWriteFailure is returned when the rewritten events file could not be
	// persisted. The file on disk is left as it was.
	ErrWriteFailure = errors.New("write failed")
	// ErrStubExists is returned when a class file is already present.
	ErrStubExists = errors.New("file already exists")
)
