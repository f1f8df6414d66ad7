// Package config provides environment-driven configuration.
package config

import (
	"os"

	apperrors "tfc-cost/internal/errors"
)

const (
	// EnvToken is the environment variable holding the API token
	EnvToken = "TFC_TOKEN"

	// EnvURL is the environment variable overriding the API base URL
	EnvURL = "TFC_URL"

	// DefaultURL is the public Terraform Cloud endpoint
	DefaultURL = "https://app.terraform.io"
)

// Config holds the Terraform Cloud connection settings
type Config struct {
	// Token is the API token (required)
	Token string `json:"-"`

	// URL is the API base URL
	URL string `json:"url"`
}

// FromEnv builds a Config from the process environment. The URL falls
// back to the public SaaS endpoint when TFC_URL is unset.
func FromEnv() Config {
	url := os.Getenv(EnvURL)
	if url == "" {
		url = DefaultURL
	}
	return Config{
		Token: os.Getenv(EnvToken),
		URL:   url,
	}
}

// Validate checks that required settings are present
func (c Config) Validate() error {
	if c.Token == "" {
		return apperrors.Config("TFC_TOKEN environment variable not set")
	}
	return nil
}
