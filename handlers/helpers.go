package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"clementus360/propalyst/api"
	"clementus360/propalyst/config"
	"clementus360/propalyst/types"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, types.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// writeBackendError maps API client failures onto this frontend's responses.
// Anything the backend did wrong surfaces as a 502 so the browser can tell
// "backend broken" from "my request was broken".
func writeBackendError(w http.ResponseWriter, err error) {
	var httpErr *api.HTTPError
	var decodeErr *api.DecodeError

	switch {
	case errors.As(err, &httpErr):
		config.Logger.Error("Backend request failed: ", err)
		writeError(w, fmt.Sprintf("backend returned status %d", httpErr.Status), http.StatusBadGateway)
	case errors.As(err, &decodeErr):
		config.Logger.Error("Backend sent an undecodable response: ", err)
		writeError(w, "backend returned an invalid response", http.StatusBadGateway)
	default:
		config.Logger.Error("Backend unreachable: ", err)
		writeError(w, "backend unreachable", http.StatusBadGateway)
	}
}
