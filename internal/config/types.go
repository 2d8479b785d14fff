package config

// Config represents the complete groundskeeper configuration.
type Config struct {
	Service    ServiceConfig    `yaml:"service"`
	Registry   RegistryConfig   `yaml:"registry"`
	Secrets    SecretsConfig    `yaml:"secrets"`
	Classifier ClassifierConfig `yaml:"classifier"`
	Rules      RulesConfig      `yaml:"rules"`
}

// ServiceConfig defines core service settings.
type ServiceConfig struct {
	Name      string `yaml:"name"`
	Listen    string `yaml:"listen"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// RegistryConfig defines where the workspace registry is sourced from.
// Exactly one of URL or Path must be set.
type RegistryConfig struct {
	URL  string `yaml:"url,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// SecretsConfig defines secret store settings.
type SecretsConfig struct {
	// Kind selects the store backend: "env" or "dir".
	Kind string `yaml:"kind"`
	// Dir is the secrets directory when Kind is "dir".
	Dir string `yaml:"dir,omitempty"`
}

// ClassifierConfig defines the AI naming-judge settings.
type ClassifierConfig struct {
	Enabled bool `yaml:"enabled"`
	// BaseURL overrides the messages API endpoint (tests, proxies).
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model"`
	// KeySecret is the secret store name holding the API key.
	KeySecret string `yaml:"key_secret"`
	MaxTokens int    `yaml:"max_tokens"`
}

// RulesConfig tunes the workflow rules.
type RulesConfig struct {
	// StaleAfterDays is the edit-age threshold for the nudge rule.
	StaleAfterDays int `yaml:"stale_after_days"`
	// PageSize is the listing page size for paginated fetches.
	PageSize int `yaml:"page_size"`
}

// Defaults returns a Config with sensible defaults.
func Defaults() *Config {
	return &Config{
		Service: ServiceConfig{
			Name:      "groundskeeper",
			Listen:    "127.0.0.1:8080",
			LogLevel:  "info",
			LogFormat: "json",
		},
		Secrets: SecretsConfig{
			Kind: "env",
		},
		Classifier: ClassifierConfig{
			Enabled:   false,
			Model:     "claude-3-sonnet-20240229",
			KeySecret: "ANTHROPIC_API_KEY",
			MaxTokens: 100,
		},
		Rules: RulesConfig{
			StaleAfterDays: 14,
			PageSize:       100,
		},
	}
}
