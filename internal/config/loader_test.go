package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     map[string]string
		wantErr bool
		checkFn func(t *testing.T, cfg *Config)
	}{
		{
			name: "minimal valid config",
			yaml: `
service:
  listen: 127.0.0.1:9090
registry:
  path: ./workspaces.json
`,
			wantErr: false,
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.Service.Listen != "127.0.0.1:9090" {
					t.Error("service.listen not parsed")
				}
				if cfg.Registry.Path != "./workspaces.json" {
					t.Error("registry.path not parsed")
				}
				// Check defaults applied
				if cfg.Rules.StaleAfterDays != 14 {
					t.Error("default stale_after_days not applied")
				}
				if cfg.Rules.PageSize != 100 {
					t.Error("default page_size not applied")
				}
				if cfg.Secrets.Kind != "env" {
					t.Error("default secrets kind not applied")
				}
			},
		},
		{
			name: "env var interpolation",
			yaml: `
registry:
  url: ${REGISTRY_URL}
classifier:
  enabled: true
  key_secret: NAMING_JUDGE_KEY
`,
			env: map[string]string{
				"REGISTRY_URL": "https://storage.example.com/workspaces.json",
			},
			wantErr: false,
			checkFn: func(t *testing.T, cfg *Config) {
				if cfg.Registry.URL != "https://storage.example.com/workspaces.json" {
					t.Errorf("registry.url = %q, env var not interpolated", cfg.Registry.URL)
				}
				if !cfg.Classifier.Enabled {
					t.Error("classifier not enabled")
				}
				if cfg.Classifier.KeySecret != "NAMING_JUDGE_KEY" {
					t.Error("classifier.key_secret not parsed")
				}
				if cfg.Classifier.Model == "" {
					t.Error("default classifier model not applied")
				}
			},
		},
		{
			name: "unresolved env var in registry url",
			yaml: `
registry:
  url: ${MISSING_REGISTRY_URL}
`,
			wantErr: true,
		},
		{
			name: "missing registry source",
			yaml: `
service:
  listen: 127.0.0.1:9090
`,
			wantErr: true,
		},
		{
			name: "both registry sources set",
			yaml: `
registry:
  url: https://example.com/ws.json
  path: ./ws.json
`,
			wantErr: true,
		},
		{
			name: "dir secrets without dir",
			yaml: `
registry:
  path: ./ws.json
secrets:
  kind: dir
`,
			wantErr: true,
		},
		{
			name: "page size out of range",
			yaml: `
registry:
  path: ./ws.json
rules:
  page_size: 500
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0600); err != nil {
				t.Fatalf("write config: %v", err)
			}

			cfg, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if tt.checkFn != nil {
				tt.checkFn(t, cfg)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
