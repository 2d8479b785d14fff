package rules

import (
	"context"

	"github.com/mattjoyce/groundskeeper/internal/log"
	"github.com/mattjoyce/groundskeeper/internal/notion"
	"github.com/mattjoyce/groundskeeper/internal/page"
	"github.com/mattjoyce/groundskeeper/internal/registry"
)

const invalidNameComment = "Invalid Name detected"

// checkNaming enforces the outcome-focused naming convention. A page is
// evaluated at most once: valid names are marked checked, invalid names
// are commented on and renamed (a rename marks checked in the same
// update), and checked pages are skipped on every later pass.
func (e *Engine) checkNaming(ctx context.Context, api DocumentAPI, ws registry.Workspace, report *Report, act *actions) {
	logger := log.WithRule(RuleNaming).With("workspace", ws.Name)

	// Ensure the checkbox column exists before the first pass writes it.
	// Failure is non-fatal: the column usually already exists.
	err := api.UpdateDatabaseSchema(ctx, ws.DatabaseID, map[string]notion.SchemaProperty{
		page.PropTitleChecked: {Checkbox: &struct{}{}},
	})
	if err != nil {
		logger.Warn("failed to ensure checked column in schema", "error", err)
	}

	rows, err := api.QueryDatabase(ctx, ws.DatabaseID)
	if err != nil {
		logger.Error("failed to list pages", "error", err)
		report.ListingFailed = true
		return
	}
	report.Pages = len(rows)

	for i := range rows {
		model := page.NewModel(&rows[i])

		title, ok := model.Title()
		if !ok {
			continue
		}
		if model.TitleChecked() {
			continue
		}

		valid, suggestion := e.validator.Classify(ctx, title)
		if valid {
			act.markChecked(ctx, model.ID())
			continue
		}

		act.comment(ctx, model.ID(), invalidNameComment)
		act.rename(ctx, model.ID(), suggestion)
		logger.Info("renamed invalid project name",
			"page", model.ID(),
			"name", title,
			"suggestion", suggestion,
		)
	}
}
