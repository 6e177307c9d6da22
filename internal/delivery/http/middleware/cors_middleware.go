package middleware

import (
	"net/http"

	"hospital-dashboard/pkg/requestid"

	"github.com/gorilla/handlers"
)

type CORSMiddleware struct {
	allowedOrigins []string
}

// NewCORSMiddleware allows every origin when none is given.
func NewCORSMiddleware(allowedOrigins ...string) *CORSMiddleware {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return &CORSMiddleware{allowedOrigins: allowedOrigins}
}

// Handle must wrap the whole router so preflight requests are answered
// before route matching.
func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(m.allowedOrigins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Content-Type", requestid.Header}),
		handlers.ExposedHeaders([]string{requestid.Header}),
	)(next)
}
