package rules

import (
	"context"

	"github.com/mattjoyce/groundskeeper/internal/log"
	"github.com/mattjoyce/groundskeeper/internal/page"
	"github.com/mattjoyce/groundskeeper/internal/registry"
)

const (
	assigneeNudgeComment = "This project is overdue / is stale. You should consider removing yourself from it, prioritizing it, or delegating it."
	ownerNudgeComment    = "This project is overdue / stale. You should consider doing, deleting, or delegating it."
)

// nudgeStale comments on not-started pages that have gone stale or past
// due. Per page, exactly one of {nudge assignees, nudge owner, no-op}
// happens: assignees are nudged when present, the owner otherwise.
func (e *Engine) nudgeStale(ctx context.Context, api DocumentAPI, ws registry.Workspace, report *Report, act *actions) {
	logger := log.WithRule(RuleNudge).With("workspace", ws.Name)

	rows, err := api.QueryDatabase(ctx, ws.DatabaseID)
	if err != nil {
		logger.Error("failed to list pages", "error", err)
		report.ListingFailed = true
		return
	}
	report.Pages = len(rows)

	now := e.now().UTC()
	for i := range rows {
		model := page.NewModel(&rows[i])

		if model.Status() != "Not started" {
			continue
		}

		days, err := model.DaysSinceLastEdit(now)
		if err != nil {
			logger.Warn("cannot compute staleness, page skipped", "page", model.ID(), "error", err)
			continue
		}
		stale := days > e.cfg.StaleAfterDays
		due := model.IsPastDue(now)
		if !stale && !due {
			continue
		}

		if assignees := model.Assignees(); len(assignees) > 0 {
			for _, assignee := range assignees {
				act.mentionAndComment(ctx, model.ID(), assignee.ID, assigneeNudgeComment)
			}
			continue
		}

		owner := model.Owner()
		if owner == nil || owner.ID == "" {
			logger.Warn("no owner to nudge", "page", model.ID())
			continue
		}
		act.mentionAndComment(ctx, model.ID(), owner.ID, ownerNudgeComment)
	}
}
