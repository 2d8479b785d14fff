package rules

import (
	"context"

	"github.com/mattjoyce/groundskeeper/internal/log"
	"github.com/mattjoyce/groundskeeper/internal/page"
	"github.com/mattjoyce/groundskeeper/internal/registry"
)

// autoAssign assigns the last editor to every in-progress page that has
// nobody assigned. The assignment fires iff status is exactly
// "in-progress" and the assignee list is empty.
func (e *Engine) autoAssign(ctx context.Context, api DocumentAPI, ws registry.Workspace, report *Report, act *actions) {
	logger := log.WithRule(RuleAssign).With("workspace", ws.Name)

	rows, err := api.QueryDatabase(ctx, ws.DatabaseID)
	if err != nil {
		logger.Error("failed to list pages", "error", err)
		report.ListingFailed = true
		return
	}
	report.Pages = len(rows)

	for i := range rows {
		model := page.NewModel(&rows[i])

		if model.Status() != "in-progress" {
			continue
		}
		if len(model.Assignees()) > 0 {
			continue
		}

		editorID, ok := model.LastEditor()
		if !ok {
			logger.Warn("last editor unavailable, page left unassigned", "page", model.ID())
			continue
		}
		act.assign(ctx, model.ID(), editorID)
	}
}
