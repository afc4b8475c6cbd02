package middleware

import "net/http"

// ServiceKeyVerifier checks the shared service-to-service secret.
type ServiceKeyVerifier interface {
	VerifyServiceKey(key string) bool
}

// RequireServiceKey guards internal endpoints. Callers present the shared
// secret in the x-api-key header; user bearer tokens carry no privilege here.
func RequireServiceKey(verifier ServiceKeyVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !verifier.VerifyServiceKey(r.Header.Get("x-api-key")) {
				writeJSONError(w, http.StatusForbidden, "invalid service key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
