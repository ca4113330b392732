package giftlist

import "errors"

var (
	// ErrSlugTaken is returned by CreateList on a slug unique violation so
	// the service can retry once with a random suffix.
	ErrSlugTaken = errors.New("slug already taken")

	// ErrNotFound covers both lists and items at the repository level; the
	// service maps it to the right wire code for the operation.
	ErrNotFound = errors.New("not found")
)
