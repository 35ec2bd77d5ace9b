package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Default endpoints of the Dynalist API and its document viewer.
const (
	DefaultAPIBaseURL = "https://dynalist.io/api/v1"
	DefaultDocBaseURL = "https://dynalist.io/d"
)

// Config holds application configuration.
type Config struct {
	// Token is the Dynalist API secret token. May also come from the
	// TREELINE_TOKEN or DYNALIST_TOKEN environment variables, which win
	// over the file.
	Token string `json:"token,omitempty"`

	// APIBaseURL is the document-service API endpoint.
	APIBaseURL string `json:"api_base_url,omitempty"`

	// DocBaseURL is the base for deep links into the document viewer.
	DocBaseURL string `json:"doc_base_url,omitempty"`

	// TimeoutSeconds bounds each remote call.
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// IndentWidth is the number of spaces per depth level in rendered
	// outlines.
	IndentWidth int `json:"indent_width,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown names are reported at startup.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		APIBaseURL:     DefaultAPIBaseURL,
		DocBaseURL:     DefaultDocBaseURL,
		TimeoutSeconds: 15,
		IndentWidth:    4,
	}
}

// Load loads configuration from baseDir/config.json, overlaying defaults and
// then the environment. Returns defaults if the file doesn't exist. The
// baseDir parameter allows tests to use t.TempDir() instead of ~/.treeline.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	merged := Merge(DefaultConfig(), cfg)
	applyEnv(merged)
	return merged, nil
}

// applyEnv overrides the token from the environment when set.
func applyEnv(cfg *Config) {
	for _, key := range []string{"TREELINE_TOKEN", "DYNALIST_TOKEN"} {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			cfg.Token = v
			return
		}
	}
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge combines base and overlay configs. Overlay values take precedence for
// scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.Token = overlay.Token
	if result.Token == "" {
		result.Token = base.Token
	}
	result.APIBaseURL = overlay.APIBaseURL
	if result.APIBaseURL == "" {
		result.APIBaseURL = base.APIBaseURL
	}
	result.DocBaseURL = overlay.DocBaseURL
	if result.DocBaseURL == "" {
		result.DocBaseURL = base.DocBaseURL
	}
	result.TimeoutSeconds = overlay.TimeoutSeconds
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = base.TimeoutSeconds
	}
	result.IndentWidth = overlay.IndentWidth
	if result.IndentWidth == 0 {
		result.IndentWidth = base.IndentWidth
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// Validate checks that the configuration is usable for remote operations.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Token, validation.Required),
		validation.Field(&c.APIBaseURL, validation.Required, is.URL),
		validation.Field(&c.DocBaseURL, validation.Required, is.URL),
		validation.Field(&c.TimeoutSeconds, validation.Min(1), validation.Max(300)),
		validation.Field(&c.IndentWidth, validation.Min(1), validation.Max(16)),
	)
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
