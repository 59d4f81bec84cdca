package core

import "errors"

// Error kinds. Every failure in the pipeline wraps exactly one of these,
// so callers can classify with errors.Is.
var (
	ErrArgument = errors.New("invalid arguments")
	ErrIO       = errors.New("i/o error")
	ErrFetch    = errors.New("url fetch error")
	ErrParse    = errors.New("error parsing document")
)
