package domain

import "errors"

// Domain errors.
var (
	ErrUnknownContext   = errors.New("unknown upload context")
	ErrInvalidProfile   = errors.New("invalid upload profile")
	ErrDuplicateContext = errors.New("upload context defined twice")
	ErrCatalogMismatch  = errors.New("message catalogs do not define the same keys")
)
