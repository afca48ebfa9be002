package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError sends {"error": msg} with the given status. Handlers further
// down use the same body shape.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
