package rules

import (
	"context"

	"github.com/mattjoyce/groundskeeper/internal/log"
	"github.com/mattjoyce/groundskeeper/internal/page"
	"github.com/mattjoyce/groundskeeper/internal/registry"
)

const missingKPIComment = "No KPI or Checklist attached to this accountability. Kindly attach one or more."

// checkAccountability flags accountability pages that have neither a
// KPI nor a Checklist relation. The people responsible are found by
// resolving the page's Roles relations and reading each target's
// Assigned To list; every such person is mentioned in a comment on the
// accountability page itself. Relations are read-only here: the rule
// never mutates links.
func (e *Engine) checkAccountability(ctx context.Context, api DocumentAPI, ws registry.Workspace, report *Report, act *actions) {
	logger := log.WithRule(RuleAccountability).With("workspace", ws.Name)

	rows, err := api.QueryDatabase(ctx, ws.DatabaseID)
	if err != nil {
		logger.Error("failed to list pages", "error", err)
		report.ListingFailed = true
		return
	}
	report.Pages = len(rows)

	for i := range rows {
		model := page.NewModel(&rows[i])

		if !model.HasAccountability() {
			continue
		}
		if model.HasChecklistOrKPI() {
			continue
		}

		roles := model.Roles()
		if len(roles) == 0 {
			continue
		}

		for _, role := range roles {
			// Relation targets are fetched on demand, never cached
			// across passes.
			target, err := api.GetPage(ctx, role.ID)
			if err != nil {
				logger.Warn("failed to resolve role relation", "page", model.ID(), "relation", role.ID, "error", err)
				continue
			}
			for _, responsible := range page.NewModel(target).AssignedTo() {
				act.mentionAndComment(ctx, model.ID(), responsible.ID, missingKPIComment)
			}
		}
	}
}
