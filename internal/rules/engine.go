// Package rules implements the workspace automation engine: five
// independent hygiene policies, each a predicate-then-action pass over
// every page of a workspace. Pages are evaluated against a single
// snapshot, independently of each other, with no state carried across
// passes.
package rules

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mattjoyce/groundskeeper/internal/config"
	"github.com/mattjoyce/groundskeeper/internal/log"
	"github.com/mattjoyce/groundskeeper/internal/naming"
	"github.com/mattjoyce/groundskeeper/internal/registry"
)

// Rule names, as exposed on the trigger surface.
const (
	RuleNaming         = "naming"
	RuleAssign         = "assign"
	RuleNudge          = "nudge"
	RuleAccountability = "accountability"
	RulePunctuation    = "punctuation"
)

// Names lists all rule names in a stable order.
func Names() []string {
	return []string{RuleNaming, RuleAssign, RuleNudge, RuleAccountability, RulePunctuation}
}

// Known reports whether name is a registered rule.
func Known(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}

// ClientFactory builds a document API client for one workspace's
// credential.
type ClientFactory func(ws registry.Workspace) DocumentAPI

// Engine runs workflow rules across workspaces: each workspace is
// processed to completion before the next begins, and within a
// workspace pages are visited one at a time in listing order.
type Engine struct {
	newClient ClientFactory
	validator naming.Validator
	cfg       config.RulesConfig

	// now is the pass clock, overridable in tests.
	now func() time.Time
}

// NewEngine creates an engine.
func NewEngine(newClient ClientFactory, validator naming.Validator, cfg config.RulesConfig) *Engine {
	return &Engine{
		newClient: newClient,
		validator: validator,
		cfg:       cfg,
		now:       time.Now,
	}
}

// Run executes one rule across all workspaces and returns one report
// per workspace. A workspace whose listing fails is reported as "no
// pages available" and the run continues with the next workspace.
func (e *Engine) Run(ctx context.Context, rule string, workspaces []registry.Workspace) ([]*Report, error) {
	if !Known(rule) {
		return nil, fmt.Errorf("unknown rule %q", rule)
	}

	runID := uuid.NewString()
	logger := log.WithRun(runID).With("rule", rule)
	logger.Info("rule run starting", "workspaces", len(workspaces))

	reports := make([]*Report, 0, len(workspaces))
	for _, ws := range workspaces {
		report := e.runWorkspace(ctx, rule, ws)
		logger.Info("workspace pass finished",
			"workspace", ws.Name,
			"pages", report.Pages,
			"applied", report.Applied(),
			"failed", report.Failures(),
		)
		reports = append(reports, report)
	}
	return reports, nil
}

func (e *Engine) runWorkspace(ctx context.Context, rule string, ws registry.Workspace) *Report {
	api := e.newClient(ws)
	report := &Report{Rule: rule, Workspace: ws.Name}
	act := &actions{
		api:    api,
		report: report,
		logger: log.WithRule(rule).With("workspace", ws.Name),
	}

	switch rule {
	case RuleNaming:
		e.checkNaming(ctx, api, ws, report, act)
	case RuleAssign:
		e.autoAssign(ctx, api, ws, report, act)
	case RuleNudge:
		e.nudgeStale(ctx, api, ws, report, act)
	case RuleAccountability:
		e.checkAccountability(ctx, api, ws, report, act)
	case RulePunctuation:
		e.normalizePunctuation(ctx, api, ws, report, act)
	}
	return report
}
