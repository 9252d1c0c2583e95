package scheduler

import "errors"

// ErrMalformedDeadline marks a record whose deadline cannot be parsed.
var ErrMalformedDeadline = errors.New("malformed deadline")
