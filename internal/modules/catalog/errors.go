package catalog

import "errors"

var (
	ErrPetNotFound    = errors.New("pet not found")
	ErrPetUnavailable = errors.New("pet is not available")
)
