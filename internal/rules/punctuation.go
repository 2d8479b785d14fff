package rules

import (
	"context"

	"github.com/mattjoyce/groundskeeper/internal/log"
	"github.com/mattjoyce/groundskeeper/internal/page"
	"github.com/mattjoyce/groundskeeper/internal/registry"
)

// normalizePunctuation terminates each page's content with a full stop.
// Only the last block is inspected: a text-bearing block is rewritten
// as a single run holding its final run's text plus "." (a bare "."
// when it has no runs); any other block type gets a fresh paragraph
// block containing "." appended after it. Pages with no content are
// left alone.
func (e *Engine) normalizePunctuation(ctx context.Context, api DocumentAPI, ws registry.Workspace, report *Report, act *actions) {
	logger := log.WithRule(RulePunctuation).With("workspace", ws.Name)

	rows, err := api.QueryDatabase(ctx, ws.DatabaseID)
	if err != nil {
		logger.Error("failed to list pages", "error", err)
		report.ListingFailed = true
		return
	}
	report.Pages = len(rows)

	for i := range rows {
		model := page.NewModel(&rows[i])

		blocks, err := api.ListBlockChildren(ctx, model.ID())
		if err != nil {
			logger.Warn("failed to list blocks, page skipped", "page", model.ID(), "error", err)
			continue
		}
		if len(blocks) == 0 {
			continue
		}

		last := blocks[len(blocks)-1]
		if !last.IsTextBearing() {
			act.appendParagraph(ctx, model.ID(), ".")
			continue
		}

		text := last.Text()
		if text == nil || len(text.RichText) == 0 {
			act.rewriteBlockText(ctx, last.ID, last.Type, ".")
			continue
		}

		lastRun := text.RichText[len(text.RichText)-1]
		content := ""
		if lastRun.Text != nil {
			content = lastRun.Text.Content
		} else if lastRun.PlainText != "" {
			content = lastRun.PlainText
		}
		// The whole block collapses to one plain run holding the final
		// run's text plus the full stop; prior runs are dropped.
		act.rewriteBlockText(ctx, last.ID, last.Type, content+".")
	}
}
