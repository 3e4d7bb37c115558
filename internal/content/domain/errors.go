package domain

import "errors"

var (
	ErrNotFound    = errors.New("content item not found")
	ErrInvalidSlug = errors.New("invalid slug")
)
