package ports

import (
	"encoding/json"
	"net/http"

	"github.com/smashlog/smashlog/internal/logging"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(body)
}

// writeError writes a failure payload with a human-readable message. Every
// feed carries its own success flag so the frontend can render one feed's
// failure without blocking the others.
func writeError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	logging.FromContext(r.Context()).Info("Returning error response", "statusCode", statusCode, "message", message)

	body, err := json.Marshal(errorResponse{
		Success: false,
		Message: message,
	})
	if err != nil {
		http.Error(w, message, statusCode)
		return
	}

	writeJSON(w, statusCode, body)
}
