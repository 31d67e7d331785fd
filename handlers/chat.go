package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/propalyst/analytics"
	"clementus360/propalyst/api"
	"clementus360/propalyst/config"
	"clementus360/propalyst/types"

	"github.com/google/uuid"
)

// ChatHandler forwards one chat turn to the backend. A request without a
// session id starts a fresh conversation.
func ChatHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}

		// The opening turn legitimately has a null user_input, so the only
		// thing this layer fills in is the session id.
		if req.SessionID == "" {
			req.SessionID = uuid.NewString()
			config.Logger.Info("Starting new chat session: ", req.SessionID)
		}

		resp, err := client.SendChat(req)
		if err != nil {
			writeBackendError(w, err)
			return
		}

		if resp.Completed {
			analytics.Event("chat_completed", map[string]any{
				"session_id": resp.SessionID,
				"steps":      resp.CurrentStep,
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
