package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvVisionProvider       = "SORTER_VISION_PROVIDER"
	EnvVisionModel          = "SORTER_VISION_MODEL"
	EnvVisionAPIKey         = "SORTER_VISION_API_KEY"
	EnvVisionRequestTimeout = "SORTER_VISION_REQUEST_TIMEOUT"

	// Provider-native key variables honored as fallbacks.
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvOpenAIAPIKey = "OPENAI_API_KEY"
)

// Supported vision providers.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// VisionConfig holds vision model provider settings. An empty Model selects
// the provider's default.
type VisionConfig struct {
	Provider       string `toml:"provider"`
	Model          string `toml:"model"`
	APIKey         string `toml:"api_key"`
	RequestTimeout string `toml:"request_timeout"`
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (c *VisionConfig) RequestTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.RequestTimeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *VisionConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *VisionConfig) Merge(overlay *VisionConfig) {
	if overlay.Provider != "" {
		c.Provider = overlay.Provider
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.RequestTimeout != "" {
		c.RequestTimeout = overlay.RequestTimeout
	}
}

func (c *VisionConfig) loadDefaults() {
	if c.Provider == "" {
		c.Provider = ProviderGemini
	}
	if c.RequestTimeout == "" {
		c.RequestTimeout = "1m"
	}
}

func (c *VisionConfig) loadEnv() {
	if v := os.Getenv(EnvVisionProvider); v != "" {
		c.Provider = v
	}
	if v := os.Getenv(EnvVisionModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvVisionAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvVisionRequestTimeout); v != "" {
		c.RequestTimeout = v
	}

	if c.APIKey == "" {
		switch c.Provider {
		case ProviderGemini:
			c.APIKey = os.Getenv(EnvGeminiAPIKey)
		case ProviderOpenAI:
			c.APIKey = os.Getenv(EnvOpenAIAPIKey)
		}
	}
}

func (c *VisionConfig) validate() error {
	if c.Provider != ProviderGemini && c.Provider != ProviderOpenAI {
		return fmt.Errorf("unsupported provider: %s", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("api_key required for provider %s", c.Provider)
	}
	if _, err := time.ParseDuration(c.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request_timeout: %w", err)
	}
	return nil
}
