package rules

import (
	"context"
	"log/slog"

	"github.com/mattjoyce/groundskeeper/internal/notion"
	"github.com/mattjoyce/groundskeeper/internal/page"
)

// actions is the set of idempotent fire-and-forget writes a rule can
// apply to a page. No action reads back to confirm; each failure is
// logged and recorded on the report so the pass keeps going.
type actions struct {
	api    DocumentAPI
	report *Report
	logger *slog.Logger
}

func (a *actions) record(action, pageID string, err error) {
	if err != nil {
		a.logger.Error("action failed", "action", action, "page", pageID, "error", err)
	} else {
		a.logger.Info("action applied", "action", action, "page", pageID)
	}
	a.report.Outcomes = append(a.report.Outcomes, Outcome{Action: action, PageID: pageID, Err: err})
}

// rename rewrites the page title and marks it checked in the same
// update, so a rename always implies "checked".
func (a *actions) rename(ctx context.Context, pageID, newTitle string) {
	checked := true
	err := a.api.UpdatePage(ctx, pageID, map[string]notion.Property{
		"title": {
			Title: []notion.RichText{{
				Text:        &notion.TextContent{Content: newTitle},
				Annotations: &notion.Annotations{Color: "default"},
				PlainText:   newTitle,
			}},
		},
		page.PropTitleChecked: {Checkbox: &checked},
	})
	a.record("rename", pageID, err)
}

func (a *actions) markChecked(ctx context.Context, pageID string) {
	checked := true
	err := a.api.UpdatePage(ctx, pageID, map[string]notion.Property{
		page.PropTitleChecked: {Checkbox: &checked},
	})
	a.record("mark-checked", pageID, err)
}

func (a *actions) comment(ctx context.Context, pageID, text string) {
	err := a.api.CreateComment(ctx, pageID, []notion.RichText{notion.TextRun(text)})
	a.record("comment", pageID, err)
}

// mentionAndComment prepends a user-mention run to the comment body.
func (a *actions) mentionAndComment(ctx context.Context, pageID, userID, text string) {
	err := a.api.CreateComment(ctx, pageID, []notion.RichText{
		notion.MentionRun(userID),
		notion.TextRun(text),
	})
	a.record("mention-comment", pageID, err)
}

// assign overwrites the Assignee people list with a single-element list
// holding the normalized user ID, replacing any prior assignees.
func (a *actions) assign(ctx context.Context, pageID, userID string) {
	err := a.api.UpdatePage(ctx, pageID, map[string]notion.Property{
		page.PropAssignee: {
			People: []notion.User{{Object: "user", ID: notion.NormalizeID(userID)}},
		},
	})
	a.record("assign", pageID, err)
}

// rewriteBlockText replaces the block's rich text with a single plain
// text run, discarding any prior runs and their formatting.
func (a *actions) rewriteBlockText(ctx context.Context, blockID, blockType, text string) {
	err := a.api.UpdateBlock(ctx, blockID, blockType, []notion.RichText{notion.TextRun(text)})
	a.record("rewrite-block", blockID, err)
}

// appendParagraph appends a new paragraph block as the page's last child.
func (a *actions) appendParagraph(ctx context.Context, pageID, text string) {
	err := a.api.AppendBlockChildren(ctx, pageID, []notion.Block{notion.NewParagraph(text)})
	a.record("append-paragraph", pageID, err)
}
