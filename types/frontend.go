package types

// Shapes served by this frontend's own /api/* routes, as opposed to the
// backend wire shapes above.

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// AreasPageRequest asks for a window over the recommended areas. A zero
// window means "first page".
type AreasPageRequest struct {
	SessionID  string `json:"session_id"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// AreasPageResponse carries one window of area cards plus the navigation
// state the UI needs to disable its previous/next buttons.
type AreasPageResponse struct {
	Success     bool   `json:"success"`
	Areas       []Area `json:"areas"`
	SessionID   string `json:"session_id"`
	StartIndex  int    `json:"start_index"`
	EndIndex    int    `json:"end_index"`
	TotalCount  int    `json:"total_count"`
	HasPrevious bool   `json:"has_previous"`
	HasNext     bool   `json:"has_next"`
	Display     string `json:"display"`
}
