// Package registry loads the workspace list that every automation pass
// fans out over. The list lives outside the service (a blob store object
// or a local file) and is re-fetched on each invocation; any fetch or
// parse failure degrades to an empty list rather than an error.
package registry

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/zeebo/blake3"

	"github.com/mattjoyce/groundskeeper/internal/config"
	"github.com/mattjoyce/groundskeeper/internal/log"
)

// Workspace is one credentialed database/collection grouping.
type Workspace struct {
	Token      string `json:"token"`
	DatabaseID string `json:"database_id"`
	Name       string `json:"name"`
}

// document mirrors the registry file layout:
// {"notion": {"workspaces": [{token, database_id, name}, ...]}}
type document struct {
	Notion struct {
		Workspaces []Workspace `json:"workspaces"`
	} `json:"notion"`
}

// Loader fetches and parses the workspace registry.
type Loader struct {
	cfg    config.RegistryConfig
	client *http.Client
	logger *slog.Logger
}

// NewLoader creates a registry loader for the configured source.
func NewLoader(cfg config.RegistryConfig) *Loader {
	return &Loader{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		logger: log.WithComponent("registry"),
	}
}

// Load returns the current workspace list. Failures are logged and
// yield an empty list; callers report "no workspace available".
func (l *Loader) Load() []Workspace {
	data, err := l.fetch()
	if err != nil {
		l.logger.Error("failed to fetch workspace registry", "error", err)
		return nil
	}

	// Snapshot hash makes registry drift between runs visible in logs.
	sum := blake3.Sum256(data)

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		l.logger.Error("failed to parse workspace registry", "error", err)
		return nil
	}

	workspaces := doc.Notion.Workspaces
	l.logger.Info("workspace registry loaded",
		"workspaces", len(workspaces),
		"snapshot", hex.EncodeToString(sum[:8]),
	)
	return workspaces
}

func (l *Loader) fetch() ([]byte, error) {
	if l.cfg.Path != "" {
		data, err := os.ReadFile(l.cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("read registry file: %w", err)
		}
		return data, nil
	}

	resp, err := l.client.Get(l.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch registry object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry object returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read registry body: %w", err)
	}
	return data, nil
}
