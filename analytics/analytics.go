// Package analytics is the frontend's tag-manager shim. Initialization is an
// explicit step the entry point runs once; nothing happens at import time.
package analytics

import (
	"clementus360/propalyst/config"
)

var measurementID string

// Init stores the measurement ID for the lifetime of the process. An empty ID
// leaves analytics disabled, which is the normal state in development.
func Init(id string) {
	measurementID = id
	if id == "" {
		config.Logger.Info("Analytics disabled (no measurement ID configured)")
		return
	}
	config.Logger.Info("Analytics initialized with measurement ID ", id)
}

// Enabled reports whether Init was given a measurement ID.
func Enabled() bool {
	return measurementID != ""
}

// PageView records a page view. With no real collector behind the frontend it
// lands in the structured log, tagged for later scraping.
func PageView(path string) {
	if !Enabled() {
		return
	}
	config.Logger.WithField("measurement_id", measurementID).
		WithField("path", path).
		Info("analytics page_view")
}

// Event records a named frontend event, e.g. a completed chat flow.
func Event(name string, params map[string]any) {
	if !Enabled() {
		return
	}
	config.Logger.WithField("measurement_id", measurementID).
		WithField("event", name).
		WithField("params", params).
		Info("analytics event")
}
