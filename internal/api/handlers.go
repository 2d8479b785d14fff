package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mattjoyce/groundskeeper/internal/rules"
)

const (
	msgNoWorkspace = "no workspace available"
	// msgOpaqueError deliberately leaks no detail to the caller; the
	// structured error lands in the logs only.
	msgOpaqueError = "an error occurred"
)

// handleHealthz handles GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeText(w, http.StatusOK, fmt.Sprintf("ok, uptime %ds", int64(time.Since(s.startedAt).Seconds())))
}

// handleTrigger handles POST /trigger/{rule}: one full pass of a single
// rule across every configured workspace.
func (s *Server) handleTrigger(w http.ResponseWriter, r *http.Request) {
	rule := chi.URLParam(r, "rule")
	if !rules.Known(rule) {
		s.writeText(w, http.StatusNotFound, fmt.Sprintf("unknown rule %q", rule))
		return
	}
	s.runRules(w, r, []string{rule})
}

// handleTriggerAll handles POST /trigger/all: every rule, sequentially,
// across every configured workspace.
func (s *Server) handleTriggerAll(w http.ResponseWriter, r *http.Request) {
	s.runRules(w, r, rules.Names())
}

func (s *Server) runRules(w http.ResponseWriter, r *http.Request, names []string) {
	workspaces := s.source.Load()
	if len(workspaces) == 0 {
		// A missing or unreadable registry is a configuration error,
		// reported cleanly rather than failed.
		s.writeText(w, http.StatusOK, msgNoWorkspace)
		return
	}

	var lines []string
	for _, name := range names {
		reports, err := s.runner.Run(r.Context(), name, workspaces)
		if err != nil {
			s.logger.Error("rule run failed", "rule", name, "error", err)
			s.writeText(w, http.StatusInternalServerError, msgOpaqueError)
			return
		}
		for _, report := range reports {
			lines = append(lines, report.Summary())
		}
	}
	s.writeText(w, http.StatusOK, strings.Join(lines, "\n"))
}

func (s *Server) writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprintln(w, body)
}
