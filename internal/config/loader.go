package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Load reads and parses configuration from a file.
func Load(configPath string) (*Config, error) {
	// Resolve to absolute path for consistent relative path resolution
	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %q: %w", configPath, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("config file not found: %s\n"+
			"Hint: Check the path or run with --config flag", absPath)
	}

	if info.IsDir() {
		// Directory provided - look for config.yaml inside
		absPath = filepath.Join(absPath, "config.yaml")
		if _, err := os.Stat(absPath); err != nil {
			return nil, fmt.Errorf("directory provided but config.yaml not found: %s", absPath)
		}
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Defaults()
	interpolated := interpolateEnv(string(data))
	if err := yaml.Unmarshal([]byte(interpolated), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %s: %w", absPath, err)
	}

	cfg = applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// interpolateEnv replaces ${VAR} references with environment values.
// Unset variables are left verbatim so validation can flag them.
func interpolateEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		if value, ok := os.LookupEnv(name); ok {
			return value
		}
		return match
	})
}

// applyDefaults fills zero-valued fields after unmarshal, since a partial
// YAML document overwrites whole sub-structs.
func applyDefaults(cfg *Config) *Config {
	def := Defaults()
	if cfg.Service.Name == "" {
		cfg.Service.Name = def.Service.Name
	}
	if cfg.Service.Listen == "" {
		cfg.Service.Listen = def.Service.Listen
	}
	if cfg.Service.LogLevel == "" {
		cfg.Service.LogLevel = def.Service.LogLevel
	}
	if cfg.Service.LogFormat == "" {
		cfg.Service.LogFormat = def.Service.LogFormat
	}
	if cfg.Secrets.Kind == "" {
		cfg.Secrets.Kind = def.Secrets.Kind
	}
	if cfg.Classifier.Model == "" {
		cfg.Classifier.Model = def.Classifier.Model
	}
	if cfg.Classifier.KeySecret == "" {
		cfg.Classifier.KeySecret = def.Classifier.KeySecret
	}
	if cfg.Classifier.MaxTokens == 0 {
		cfg.Classifier.MaxTokens = def.Classifier.MaxTokens
	}
	if cfg.Rules.StaleAfterDays == 0 {
		cfg.Rules.StaleAfterDays = def.Rules.StaleAfterDays
	}
	if cfg.Rules.PageSize == 0 {
		cfg.Rules.PageSize = def.Rules.PageSize
	}
	return cfg
}

func validate(cfg *Config) error {
	if cfg.Registry.URL == "" && cfg.Registry.Path == "" {
		return fmt.Errorf("registry: either url or path must be set")
	}
	if cfg.Registry.URL != "" && cfg.Registry.Path != "" {
		return fmt.Errorf("registry: url and path are mutually exclusive")
	}
	switch cfg.Secrets.Kind {
	case "env":
	case "dir":
		if cfg.Secrets.Dir == "" {
			return fmt.Errorf("secrets: dir is required when kind is %q", cfg.Secrets.Kind)
		}
	default:
		return fmt.Errorf("secrets: unknown kind %q (want env or dir)", cfg.Secrets.Kind)
	}
	if cfg.Rules.StaleAfterDays < 0 {
		return fmt.Errorf("rules: stale_after_days must not be negative")
	}
	if cfg.Rules.PageSize < 1 || cfg.Rules.PageSize > 100 {
		return fmt.Errorf("rules: page_size must be in 1..100")
	}
	if envVarPattern.MatchString(cfg.Registry.URL) {
		return fmt.Errorf("registry: url contains unresolved environment variable")
	}
	return nil
}
