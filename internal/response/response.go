// Package response provides shared plain-text response helpers for HTTP handlers.
package response

import "net/http"

// Text writes body with the given HTTP status code.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// OK writes a 200 response.
func OK(w http.ResponseWriter, body string) {
	Text(w, http.StatusOK, body)
}

// Unauthorized writes a 401 response.
func Unauthorized(w http.ResponseWriter, body string) {
	Text(w, http.StatusUnauthorized, body)
}

// InternalError writes a 500 response.
func InternalError(w http.ResponseWriter, body string) {
	Text(w, http.StatusInternalServerError, body)
}
