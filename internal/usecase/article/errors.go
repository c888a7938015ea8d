// Package article provides use cases for managing article entities.
// It implements business logic for creating, updating, deleting, and querying articles,
// including validation, slug uniqueness and interaction with the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// This error is returned when the identifier is well-formed but nothing matched.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the identifier is not in the store's format.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrArticleIDRequired indicates that no identifier was supplied.
	ErrArticleIDRequired = errors.New("article ID is required")

	// ErrDuplicateSlug indicates that another article already uses the slug.
	ErrDuplicateSlug = errors.New("article with this slug already exists")

	// ErrNoFieldsToUpdate indicates an update payload that changes nothing.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
