package apperr

import "errors"

var (
	// ErrNothingProduced signals a run that completed without writing
	// or keeping any page. The CLI maps it to a non-zero exit.
	ErrNothingProduced = errors.New("nothing produced")
)
