package api

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo contains error details. Code is a stable machine-readable
// identifier such as NOT_SEGMENT or INVALID_DATE.
type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteSuccess writes data in a 200 envelope.
func WriteSuccess(w http.ResponseWriter, data any) error {
	return writeData(w, http.StatusOK, data)
}

// WriteCreated writes data in a 201 envelope.
func WriteCreated(w http.ResponseWriter, data any) error {
	return writeData(w, http.StatusCreated, data)
}

func writeData(w http.ResponseWriter, status int, data any) error {
	return WriteJSON(w, status, Response{Success: true, Data: data})
}

// WriteError writes an error envelope.
func WriteError(w http.ResponseWriter, status int, message, code string) error {
	return WriteJSON(w, status, Response{
		Error: &ErrorInfo{Message: message, Code: code},
	})
}

func WriteNotFound(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusNotFound, message, "NOT_FOUND")
}

func WriteBadRequest(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusBadRequest, message, "BAD_REQUEST")
}

func WriteUnauthorized(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusUnauthorized, message, "UNAUTHORIZED")
}

// WriteUnprocessable reports a well-formed request whose content cannot be
// processed, e.g. codes that are not a digital straight line segment.
func WriteUnprocessable(w http.ResponseWriter, message, code string) error {
	return WriteError(w, http.StatusUnprocessableEntity, message, code)
}

func WriteInternalError(w http.ResponseWriter, message string) error {
	return WriteError(w, http.StatusInternalServerError, message, "INTERNAL_ERROR")
}
