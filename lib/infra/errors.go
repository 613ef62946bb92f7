package infra

import "errors"

// Container and algorithm error taxonomy. Callers match with errors.Is,
// the values are usually returned wrapped by WrapErrorStackWithMessage.
var (
	ErrEmptyContainer      = errors.New("empty container")
	ErrNotFound            = errors.New("value not found")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrMalformedExpression = errors.New("malformed expression")
)
