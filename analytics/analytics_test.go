package analytics

import "testing"

func TestInit_EmptyIDDisables(t *testing.T) {
	Init("")
	if Enabled() {
		t.Error("expected analytics disabled without a measurement ID")
	}
	// Must be a no-op, not a panic.
	PageView("/search")
	Event("chat_completed", nil)
}

func TestInit_WithIDEnables(t *testing.T) {
	Init("G-TEST123")
	defer Init("")
	if !Enabled() {
		t.Error("expected analytics enabled after Init with an ID")
	}
	PageView("/search")
	Event("chat_completed", map[string]any{"session_id": "s"})
}
