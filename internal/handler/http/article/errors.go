package article

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"herald/internal/domain/entity"
	"herald/internal/handler/http/pathutil"
	"herald/internal/handler/http/respond"
	artUC "herald/internal/usecase/article"
)

// writeError translates use case errors into the response envelope.
// Anything unrecognized is a 500 carrying msg and the sanitized cause.
func writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var (
		missing *entity.MissingFieldsError
		invalid *entity.ValidationError
	)
	switch {
	case errors.As(err, &missing):
		respond.MissingFields(w, missing.Fields)
	case errors.As(err, &invalid):
		respond.Fail(w, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, pathutil.ErrMissingID), errors.Is(err, artUC.ErrArticleIDRequired):
		respond.Fail(w, http.StatusBadRequest, "Article ID is required")
	case errors.Is(err, artUC.ErrInvalidArticleID):
		respond.Fail(w, http.StatusBadRequest, "Invalid article ID")
	case errors.Is(err, artUC.ErrNoFieldsToUpdate):
		respond.Fail(w, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.Fail(w, http.StatusNotFound, "Article not found")
	case errors.Is(err, artUC.ErrDuplicateSlug):
		respond.Fail(w, http.StatusConflict, "Article with this slug already exists")
	default:
		respond.Internal(w, r, msg, err)
	}
}

// decodeBody reads a JSON request body into v and answers the client itself
// when the body is unusable. It reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		respond.Fail(w, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, io.EOF):
		respond.Fail(w, http.StatusBadRequest, "Request body is required")
	default:
		respond.Fail(w, http.StatusBadRequest, "Invalid JSON body")
	}
	return false
}
