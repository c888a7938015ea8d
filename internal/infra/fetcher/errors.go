package fetcher

import "errors"

var (
	// ErrInvalidURL is returned for malformed or disallowed source URLs.
	ErrInvalidURL = errors.New("invalid source url")
	// ErrTimeout is returned when the source does not answer in time.
	ErrTimeout = errors.New("source fetch timed out")
	// ErrBodyTooLarge is returned when the page exceeds Config.MaxBodySize.
	ErrBodyTooLarge = errors.New("source body too large")
	// ErrTooManyRedirects is returned when Config.MaxRedirects is exceeded.
	ErrTooManyRedirects = errors.New("too many redirects")
	// ErrNoContent is returned when no readable text could be extracted.
	ErrNoContent = errors.New("no readable content")
)
