package subscription

import "errors"

var ErrUnknownPlan = errors.New("unknown subscription type")
