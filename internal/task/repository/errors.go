package repository

import "errors"

var (
	ErrNotFound = errors.New("task not found in store")
)
