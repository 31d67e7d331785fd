package pagination

import "testing"

func TestWindow_NavigationFlags(t *testing.T) {
	tests := []struct {
		name        string
		window      Window
		hasPrevious bool
		hasNext     bool
	}{
		{"empty collection", Window{0, 0, 0}, false, false},
		{"first page of many", Window{0, 3, 10}, false, true},
		{"middle page", Window{3, 6, 10}, true, true},
		{"last full page", Window{7, 10, 10}, true, false},
		{"last page overshoots", Window{9, 12, 10}, true, false},
		{"single page covers all", Window{0, 10, 10}, false, false},
		{"window at zero with items", Window{0, 0, 5}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.HasPrevious(); got != tt.hasPrevious {
				t.Errorf("HasPrevious() = %v, want %v", got, tt.hasPrevious)
			}
			if got := tt.window.HasNext(); got != tt.hasNext {
				t.Errorf("HasNext() = %v, want %v", got, tt.hasNext)
			}
		})
	}
}

func TestWindow_DisplayRange(t *testing.T) {
	tests := []struct {
		name   string
		window Window
		want   string
	}{
		{"empty collection", Window{0, 0, 0}, "Showing 1 to 0 of 0 items"},
		{"first page", Window{0, 3, 10}, "Showing 1 to 3 of 10 items"},
		{"middle page", Window{3, 6, 10}, "Showing 4 to 6 of 10 items"},
		{"overshooting end is clamped", Window{9, 12, 10}, "Showing 10 to 10 of 10 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.DisplayRange(); got != tt.want {
				t.Errorf("DisplayRange() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWindow_DisplayEndClampsButDoesNotCorrect(t *testing.T) {
	w := Window{StartIndex: 9, EndIndex: 12, TotalCount: 10}
	if got := w.DisplayEnd(); got != 10 {
		t.Errorf("DisplayEnd() = %d, want 10", got)
	}
	// The stored window is left alone.
	if w.EndIndex != 12 {
		t.Errorf("EndIndex mutated to %d", w.EndIndex)
	}
}

func TestController_FiresCallbacksOnlyWhenAllowed(t *testing.T) {
	prevCalls, nextCalls := 0, 0
	c := Controller{
		Window:     Window{StartIndex: 3, EndIndex: 6, TotalCount: 10},
		OnPrevious: func() { prevCalls++ },
		OnNext:     func() { nextCalls++ },
	}

	c.Previous()
	c.Next()
	if prevCalls != 1 || nextCalls != 1 {
		t.Errorf("expected one call each, got prev=%d next=%d", prevCalls, nextCalls)
	}

	c.Window = Window{StartIndex: 0, EndIndex: 10, TotalCount: 10}
	c.Previous()
	c.Next()
	if prevCalls != 1 || nextCalls != 1 {
		t.Errorf("expected no further calls on a boundary window, got prev=%d next=%d", prevCalls, nextCalls)
	}
}

func TestController_NilCallbacksAreSafe(t *testing.T) {
	c := Controller{Window: Window{StartIndex: 3, EndIndex: 6, TotalCount: 10}}
	// Must not panic.
	c.Previous()
	c.Next()
}

func TestController_DoesNotMutateWindow(t *testing.T) {
	c := Controller{
		Window: Window{StartIndex: 3, EndIndex: 6, TotalCount: 10},
		OnNext: func() {},
	}
	c.Next()
	if c.Window.StartIndex != 3 || c.Window.EndIndex != 6 {
		t.Errorf("controller mutated the window: %+v", c.Window)
	}
}
