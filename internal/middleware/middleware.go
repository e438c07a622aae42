// Package middleware provides the HTTP cross-cutting layer: request
// IDs, request-scoped logging, Prometheus metrics, rate limiting, and
// body/time limits. Error responses here mirror the handler package's
// JSON error body but stay self-contained to avoid a circular import
// (handler imports middleware for GetLogger and GetRequestID).
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/lavkashop/lavka/internal/domain"
)

// contextKey is a private type for context values set by this package.
type contextKey string

// respondWithError writes the standard JSON error body for err.
func respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.ErrorCode(err)
	status := errorStatus(code)

	logger := GetLogger(r.Context())
	logger.Info("middleware rejected request",
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": domain.ErrorMessage(err),
		},
	})
}

func respondTooManyRequests(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Retry-After", "1")
	respondWithError(w, r, domain.Errorf(domain.ERATELIMIT, "", "Too many requests"))
}

func respondTooLarge(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, r, domain.Errorf(domain.ETOOLARGE, "", "Request body too large"))
}

func errorStatus(code string) int {
	switch code {
	case domain.ERATELIMIT:
		return http.StatusTooManyRequests
	case domain.ETOOLARGE:
		return http.StatusRequestEntityTooLarge
	case domain.EINVALID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
