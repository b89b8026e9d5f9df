package checklist

import "errors"

var ErrIncomplete = errors.New("checklist is not complete")
