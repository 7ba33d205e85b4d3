package valid

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ErrorResponse is the standard HTTP error payload written when a request
// body fails validation
type ErrorResponse struct {
	Error   string  `json:"error"`
	Details []Issue `json:"details,omitempty"`
}

// ValidateRequest validates an HTTP request body against the schema. The
// body is restored afterwards so the next handler can read it again
func (s *JSONSchema) ValidateRequest(r *http.Request) (Result[any], error) {
	if r == nil {
		return Result[any]{}, fmt.Errorf("request must not be nil")
	}

	if r.Body == nil {
		return Result[any]{}, fmt.Errorf("request body must not be nil")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return Result[any]{}, fmt.Errorf("reading request body: %w", err)
	}

	r.Body = io.NopCloser(bytes.NewReader(body))

	return Validate[any](s, body), nil
}

// MiddlewareConfig holds settings for the validation middleware
type MiddlewareConfig struct {
	// SkipMethods lists HTTP methods that bypass validation
	// (default: GET, DELETE, HEAD, OPTIONS)
	SkipMethods []string
	// ErrorHandler handles requests whose body failed validation
	ErrorHandler func(w http.ResponseWriter, r *http.Request, verr *Error)
}

// Middleware returns an HTTP middleware that rejects requests whose body
// does not conform to the schema
func (s *JSONSchema) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return s.MiddlewareWithConfig(MiddlewareConfig{}, next)
}

// MiddlewareWithConfig returns an HTTP middleware with custom settings
func (s *JSONSchema) MiddlewareWithConfig(config MiddlewareConfig, next http.HandlerFunc) http.HandlerFunc {
	if len(config.SkipMethods) == 0 {
		config.SkipMethods = []string{http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions}
	}

	if config.ErrorHandler == nil {
		config.ErrorHandler = defaultErrorHandler
	}

	return func(w http.ResponseWriter, r *http.Request) {
		for _, method := range config.SkipMethods {
			if r.Method == method {
				next(w, r)
				return
			}
		}

		result, err := s.ValidateRequest(r)
		if err != nil {
			http.Error(w, fmt.Sprintf("internal validation error: %s", err),
				http.StatusInternalServerError)
			return
		}

		if !result.Valid {
			config.ErrorHandler(w, r, result.Err)
			return
		}

		next(w, r)
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, verr *Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   verr.Message,
		Details: verr.Issues,
	})
}
