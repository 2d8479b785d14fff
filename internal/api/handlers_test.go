package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/mattjoyce/groundskeeper/internal/registry"
	"github.com/mattjoyce/groundskeeper/internal/rules"
)

// mockRunner is a mock implementation of RuleRunner for testing.
type mockRunner struct {
	runFn func(ctx context.Context, rule string, workspaces []registry.Workspace) ([]*rules.Report, error)
	calls []string
}

func (m *mockRunner) Run(ctx context.Context, rule string, workspaces []registry.Workspace) ([]*rules.Report, error) {
	m.calls = append(m.calls, rule)
	if m.runFn != nil {
		return m.runFn(ctx, rule, workspaces)
	}
	return []*rules.Report{{Rule: rule, Workspace: "Tasks", Pages: 3}}, nil
}

// mockSource is a mock implementation of WorkspaceSource.
type mockSource struct {
	workspaces []registry.Workspace
}

func (m *mockSource) Load() []registry.Workspace {
	return m.workspaces
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testServer(runner RuleRunner, source WorkspaceSource) *Server {
	return New(Config{Listen: "127.0.0.1:0"}, runner, source, testLogger())
}

func doRequest(t *testing.T, s *Server, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	s.setupRoutes().ServeHTTP(rec, req)
	return rec
}

func TestTriggerRule(t *testing.T) {
	runner := &mockRunner{}
	source := &mockSource{workspaces: []registry.Workspace{{Name: "Tasks", DatabaseID: "db-1"}}}
	s := testServer(runner, source)

	rec := doRequest(t, s, "POST", "/trigger/naming")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "naming: Tasks") {
		t.Errorf("body = %q, want workspace summary", body)
	}
	if len(runner.calls) != 1 || runner.calls[0] != "naming" {
		t.Errorf("runner calls = %v", runner.calls)
	}
}

func TestTriggerUnknownRule(t *testing.T) {
	runner := &mockRunner{}
	s := testServer(runner, &mockSource{workspaces: []registry.Workspace{{Name: "Tasks"}}})

	rec := doRequest(t, s, "POST", "/trigger/defrag")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner should not be called, got %v", runner.calls)
	}
}

func TestTriggerNoWorkspaces(t *testing.T) {
	runner := &mockRunner{}
	s := testServer(runner, &mockSource{})

	rec := doRequest(t, s, "POST", "/trigger/naming")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (config errors exit cleanly)", rec.Code, http.StatusOK)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "no workspace available") {
		t.Errorf("body = %q", body)
	}
	if len(runner.calls) != 0 {
		t.Errorf("runner should not be called, got %v", runner.calls)
	}
}

func TestTriggerRunnerFailureIsOpaque(t *testing.T) {
	runner := &mockRunner{
		runFn: func(context.Context, string, []registry.Workspace) ([]*rules.Report, error) {
			return nil, errors.New("credential revoked for workspace Tasks")
		},
	}
	s := testServer(runner, &mockSource{workspaces: []registry.Workspace{{Name: "Tasks"}}})

	rec := doRequest(t, s, "POST", "/trigger/nudge")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	body, _ := io.ReadAll(rec.Body)
	if strings.Contains(string(body), "credential") {
		t.Errorf("body leaks error detail: %q", body)
	}
	if !strings.Contains(string(body), "an error occurred") {
		t.Errorf("body = %q, want opaque failure message", body)
	}
}

func TestTriggerAll(t *testing.T) {
	runner := &mockRunner{}
	s := testServer(runner, &mockSource{workspaces: []registry.Workspace{{Name: "Tasks"}}})

	rec := doRequest(t, s, "POST", "/trigger/all")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(runner.calls) != len(rules.Names()) {
		t.Errorf("runner calls = %v, want all rules", runner.calls)
	}
}

func TestHealthz(t *testing.T) {
	s := testServer(&mockRunner{}, &mockSource{})

	rec := doRequest(t, s, "GET", "/healthz")

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.HasPrefix(string(body), "ok") {
		t.Errorf("body = %q", body)
	}
}
