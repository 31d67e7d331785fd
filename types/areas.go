package types

// Area is one recommended neighbourhood card. Field names are camelCase on the
// wire because that is what the backend sends.
type Area struct {
	AreaName           string   `json:"areaName"`
	Image              string   `json:"image"`
	ChildFriendlyScore float64  `json:"childFriendlyScore"`
	SchoolsNearby      int      `json:"schoolsNearby"`
	AverageCommute     string   `json:"averageCommute"`
	BudgetRange        string   `json:"budgetRange"`
	Highlights         []string `json:"highlights"`
}

type AreasRequest struct {
	SessionID string `json:"session_id"`
}

type AreasResponse struct {
	Areas     []Area `json:"areas"`
	SessionID string `json:"session_id"`
}
