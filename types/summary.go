package types

type SummaryRequest struct {
	SessionID string `json:"session_id"`
}

type SummaryResponse struct {
	Summary   string `json:"summary"`
	SessionID string `json:"session_id"`
}
