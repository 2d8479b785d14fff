// Package secrets resolves named credentials for external collaborators.
// The engine never manages credentials itself; it only reads them.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LatestVersion selects the newest version of a secret.
const LatestVersion = "latest"

// Store retrieves named secrets. Implementations must treat a missing
// secret as an error; callers decide whether that is terminal.
type Store interface {
	// Get returns the UTF-8 value of the named secret at the given
	// version. Version "latest" (or empty) selects the newest value.
	Get(name, version string) (string, error)
}

// EnvStore reads secrets from process environment variables. Versions
// other than "latest" are not supported.
type EnvStore struct{}

// NewEnvStore creates an environment-backed secret store.
func NewEnvStore() *EnvStore {
	return &EnvStore{}
}

// Get implements Store.
func (s *EnvStore) Get(name, version string) (string, error) {
	if version != "" && version != LatestVersion {
		return "", fmt.Errorf("env secret store does not support version %q", version)
	}
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("secret %q not set in environment", name)
	}
	return strings.TrimSpace(value), nil
}

// DirStore reads secrets from a directory, one file per secret. A pinned
// version N is the file "<name>@N"; "latest" is the bare "<name>" file.
type DirStore struct {
	dir string
}

// NewDirStore creates a directory-backed secret store.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

// Get implements Store.
func (s *DirStore) Get(name, version string) (string, error) {
	filename := name
	if version != "" && version != LatestVersion {
		filename = name + "@" + version
	}

	// Reject path traversal in secret names.
	if filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid secret name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to read secret %q: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}
