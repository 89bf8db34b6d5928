package domain

import "errors"

// ErrInvalidArgument is returned when a caller passes an out-of-range
// parameter (negative walk length, non-positive trial count, empty
// collection). All invalid input errors wrap this sentinel.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrSummaryNotFound is returned when a named summary cannot be found in a
// result store.
var ErrSummaryNotFound = errors.New("summary not found")
