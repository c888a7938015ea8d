package breakingnews

import "errors"

var (
	// ErrItemNotFound indicates the identifier is well-formed but nothing matched.
	ErrItemNotFound = errors.New("breaking news item not found")

	// ErrInvalidItemID indicates the identifier is not in the store's format.
	ErrInvalidItemID = errors.New("invalid breaking news item ID")

	// ErrItemIDRequired indicates that no identifier was supplied.
	ErrItemIDRequired = errors.New("breaking news item ID is required")
)
