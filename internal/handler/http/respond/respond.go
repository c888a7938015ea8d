// Package respond writes the JSON envelope shared by every API endpoint:
//
//	{"success": true, "data": ..., "count": 3}
//	{"success": false, "error": "...", "missingFields": ["category"]}
//
// Internal failures are logged with secrets masked and surface only a
// sanitized message to the client.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Envelope is the response body shape.
type Envelope struct {
	Success       bool     `json:"success"`
	Data          any      `json:"data,omitempty"`
	Count         *int     `json:"count,omitempty"`
	Message       string   `json:"message,omitempty"`
	Error         string   `json:"error,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// ヘッダー送信済みなのでログのみ
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// OK writes {success:true, data}.
func OK(w http.ResponseWriter, code int, data any) {
	JSON(w, code, Envelope{Success: true, Data: data})
}

// List writes {success:true, data, count}.
func List(w http.ResponseWriter, data any, count int) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// Message writes {success:true, data?, message}.
func Message(w http.ResponseWriter, code int, data any, msg string) {
	JSON(w, code, Envelope{Success: true, Data: data, Message: msg})
}

// Fail writes {success:false, error}.
func Fail(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, Envelope{Success: false, Error: msg})
}

// MissingFields writes a 400 listing the absent required fields in order.
func MissingFields(w http.ResponseWriter, fields []string) {
	JSON(w, http.StatusBadRequest, Envelope{
		Success:       false,
		Error:         "Missing required fields",
		MissingFields: fields,
	})
}

// Internal logs err and writes a 500 with msg and the sanitized error text.
func Internal(w http.ResponseWriter, r *http.Request, msg string, err error) {
	sanitized := SanitizeError(err)
	slog.ErrorContext(r.Context(), msg,
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", sanitized))
	JSON(w, http.StatusInternalServerError, Envelope{
		Success: false,
		Error:   msg,
		Message: sanitized,
	})
}
