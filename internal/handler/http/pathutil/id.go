// Package pathutil reads identifiers from Go 1.22 ServeMux path wildcards.
package pathutil

import (
	"errors"
	"net/http"
	"strings"
)

// ErrMissingID is returned when the path wildcard is empty.
var ErrMissingID = errors.New("id is required")

// ID returns the trimmed {id} wildcard of r.
// Shape validation is left to the store, which distinguishes malformed from absent ids.
func ID(r *http.Request) (string, error) {
	return Value(r, "id")
}

// Value returns the named wildcard, or ErrMissingID when it is blank.
func Value(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(r.PathValue(name))
	if v == "" {
		return "", ErrMissingID
	}
	return v, nil
}
