package handlers

import (
	"encoding/json"
	"net/http"

	"clementus360/propalyst/api"
	"clementus360/propalyst/pagination"
	"clementus360/propalyst/types"
)

// Area cards shown per page when the browser doesn't ask for a window.
const defaultAreaPageSize = 3

// AreasHandler returns one window of recommended area cards. The browser owns
// the window and sends it back on every page turn; this handler only slices
// and reports the navigation flags.
func AreasHandler(client *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AreasPageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		if req.SessionID == "" {
			writeError(w, "Missing session_id", http.StatusBadRequest)
			return
		}
		if req.StartIndex < 0 || req.EndIndex < req.StartIndex {
			writeError(w, "Invalid window bounds", http.StatusBadRequest)
			return
		}

		backendResp, err := client.FetchAreas(types.AreasRequest{SessionID: req.SessionID})
		if err != nil {
			writeBackendError(w, err)
			return
		}

		window := pagination.Window{
			StartIndex: req.StartIndex,
			EndIndex:   req.EndIndex,
			TotalCount: len(backendResp.Areas),
		}
		if window.StartIndex == 0 && window.EndIndex == 0 && window.TotalCount > 0 {
			window.EndIndex = defaultAreaPageSize
		}

		writeJSON(w, http.StatusOK, types.AreasPageResponse{
			Success:     true,
			Areas:       sliceWindow(backendResp.Areas, window),
			SessionID:   backendResp.SessionID,
			StartIndex:  window.StartIndex,
			EndIndex:    window.EndIndex,
			TotalCount:  window.TotalCount,
			HasPrevious: window.HasPrevious(),
			HasNext:     window.HasNext(),
			Display:     window.DisplayRange(),
		})
	}
}

// sliceWindow takes the window's view of areas, tolerating a window that runs
// past the end of the list.
func sliceWindow(areas []types.Area, w pagination.Window) []types.Area {
	start := w.StartIndex
	if start > len(areas) {
		start = len(areas)
	}
	return areas[start:w.DisplayEnd()]
}
