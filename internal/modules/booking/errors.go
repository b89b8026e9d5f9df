package booking

import (
	"errors"
	"strings"
)

var ErrMissingFields = errors.New("missing booking fields")

const MissingFieldsMessage = "Please select both a date and time for your booking."

// MissingFieldsError names the request fields that were left empty.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error { return ErrMissingFields }
