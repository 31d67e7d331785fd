package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/propalyst/api"
	"clementus360/propalyst/types"
)

// SummaryHandler fetches the backend's summary of a finished conversation.
func SummaryHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SummaryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.SessionID == "" {
			writeError(w, "Missing session_id", http.StatusBadRequest)
			return
		}

		resp, err := client.FetchSummary(req)
		if err != nil {
			writeBackendError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
