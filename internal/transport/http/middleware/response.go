package middleware

import (
	"encoding/json"
	"net/http"
)

// writeAuthError writes the 401 body. The expired flag is part of the client
// contract: only expired=true should trigger a refresh-and-retry.
func writeAuthError(w http.ResponseWriter, msg string, expired bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": msg,
		"expired": expired,
	})
}

// writeJSONError writes a generic JSON error response.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": msg,
	})
}
