package config

import "testing"

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("PROPALYST_API_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("GA_MEASUREMENT_ID", "")

	s := LoadSettings()

	if s.APIBaseURL != "http://localhost:8000" {
		t.Errorf("expected default API base URL, got %q", s.APIBaseURL)
	}
	if s.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", s.Port)
	}
	if s.MeasurementID != "" {
		t.Errorf("expected empty measurement ID, got %q", s.MeasurementID)
	}
}

func TestLoadSettings_Overrides(t *testing.T) {
	t.Setenv("PROPALYST_API_URL", "https://api.propalyst.example")
	t.Setenv("PORT", "8081")
	t.Setenv("GA_MEASUREMENT_ID", "G-TEST123")

	s := LoadSettings()

	if s.APIBaseURL != "https://api.propalyst.example" {
		t.Errorf("expected overridden API base URL, got %q", s.APIBaseURL)
	}
	if s.Port != "8081" {
		t.Errorf("expected overridden port, got %q", s.Port)
	}
	if s.MeasurementID != "G-TEST123" {
		t.Errorf("expected overridden measurement ID, got %q", s.MeasurementID)
	}
}
