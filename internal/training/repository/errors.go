package repository

import "errors"

var (
	ErrFailedToOpen      = errors.New("failed to open corpus")
	ErrFailedToList      = errors.New("failed to list examples")
	ErrColumnNotFound    = errors.New("column not found in corpus")
	ErrInvalidIdentifier = errors.New("invalid table or column name")
)
