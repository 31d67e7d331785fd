package types

// Message roles as the backend emits them.
const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

// ChatMessage is one turn in the assistant transcript.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Component is a UI hint the backend may attach to a chat turn, e.g. a form
// field or an area-card carousel. Props are backend-defined and passed through
// untouched.
type Component struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

type ChatRequest struct {
	SessionID string `json:"session_id"`
	// UserInput is null on the opening turn, so it stays a pointer and is
	// always serialized.
	UserInput *string `json:"user_input"`
	Field     string  `json:"field,omitempty"`
}

type ChatResponse struct {
	Component   *Component    `json:"component"`
	Message     string        `json:"message"`
	Messages    []ChatMessage `json:"messages"`
	SessionID   string        `json:"session_id"`
	CurrentStep int           `json:"current_step"`
	Completed   bool          `json:"completed"`
}
