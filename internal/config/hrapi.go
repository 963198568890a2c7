package config

import (
	"os"
	"sync"
)

type HRAPIConfig struct {
	BaseURL string
}

var (
	hrAPIConfig *HRAPIConfig
	hrAPIOnce   sync.Once
)

// LoadHRAPIConfig returns the address of the HR backend. The "/api" prefix is
// appended by the record client, not here.
func LoadHRAPIConfig() *HRAPIConfig {
	hrAPIOnce.Do(func() {
		baseURL := os.Getenv("HR_API_BASE_URL")
		if baseURL == "" {
			baseURL = "http://localhost:8080"
		}
		hrAPIConfig = &HRAPIConfig{
			BaseURL: baseURL,
		}
	})
	return hrAPIConfig
}
