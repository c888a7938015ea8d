package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter_RecordsStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	w := Wrap(rec)

	assert.Equal(t, http.StatusOK, w.StatusCode())
	assert.False(t, w.HeaderWritten())

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("hello"))
	_, _ = w.Write([]byte(" world"))

	assert.True(t, w.HeaderWritten())
	assert.Equal(t, http.StatusCreated, w.StatusCode())
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 11, w.BytesWritten())
	assert.Equal(t, "hello world", rec.Body.String())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	w := Wrap(httptest.NewRecorder())
	_, _ = w.Write([]byte("x"))

	assert.True(t, w.HeaderWritten())
	assert.Equal(t, http.StatusOK, w.StatusCode())
}

func TestWrap_Idempotent(t *testing.T) {
	rec := httptest.NewRecorder()
	outer := Wrap(rec)

	assert.Same(t, outer, Wrap(outer))
	assert.Equal(t, http.ResponseWriter(rec), outer.Unwrap())
}
