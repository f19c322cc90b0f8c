package models

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrMissingField = errors.New("required field missing")
	ErrInvalidValue = errors.New("invalid value")
	ErrInvalidInput = errors.New("invalid input")
)
