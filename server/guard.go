package server

import (
	"crypto/subtle"
	"net/http"
)

// APIKeyHeader is the header browser callers must present on every API call.
const APIKeyHeader = "X-API-Key"

// apiKeyMiddleware validates the caller-supplied shared secret before any
// other processing. Absence or mismatch terminates the request with 403.
func (s *Server) apiKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get(APIKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.apiKey)) != 1 {
			s.logger.WithField("remote", r.RemoteAddr).Warn("rejected request with missing or invalid api key")
			s.writeError(w, http.StatusForbidden, "unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
