// Package pagination holds the windowing contract used by every paged list in
// the frontend: the caller owns a half-open window [StartIndex, EndIndex) over
// a collection of TotalCount items, and this package derives navigation state
// from it.
package pagination

import "fmt"

// Window is a caller-owned view over an ordered collection. Nothing here
// mutates it; advancing and clamping the window is the caller's job.
type Window struct {
	StartIndex int
	EndIndex   int
	TotalCount int
}

// HasPrevious reports whether anything precedes the window.
func (w Window) HasPrevious() bool {
	return w.StartIndex > 0
}

// HasNext reports whether anything follows the window.
func (w Window) HasNext() bool {
	return w.EndIndex < w.TotalCount
}

// DisplayEnd clamps the window end for display. The stored EndIndex may run
// past the collection on the last page; what the user sees must not.
func (w Window) DisplayEnd() int {
	if w.EndIndex > w.TotalCount {
		return w.TotalCount
	}
	return w.EndIndex
}

// DisplayRange renders the "Showing X to Y of Z items" label.
func (w Window) DisplayRange() string {
	return fmt.Sprintf("Showing %d to %d of %d items", w.StartIndex+1, w.DisplayEnd(), w.TotalCount)
}

// Controller exposes the two navigation intents over a window. The callbacks
// come from the caller and are what actually move the window; the controller
// only decides whether firing them makes sense. A nil callback is a no-op.
type Controller struct {
	Window     Window
	OnPrevious func()
	OnNext     func()
}

// Previous fires OnPrevious when there is a previous page.
func (c Controller) Previous() {
	if c.Window.HasPrevious() && c.OnPrevious != nil {
		c.OnPrevious()
	}
}

// Next fires OnNext when there is a next page.
func (c Controller) Next() {
	if c.Window.HasNext() && c.OnNext != nil {
		c.OnNext()
	}
}
