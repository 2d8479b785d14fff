// Package page provides a read-only typed view over one raw page
// payload. A Model never re-fetches: every derivation within one
// workflow pass reads the same snapshot, even though the underlying
// document may change concurrently.
package page

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattjoyce/groundskeeper/internal/notion"
)

// Property names the rules read. The checkbox key is canonical
// lowercase for both read and write paths; reading a differently cased
// key would break the naming rule's idempotence boundary.
const (
	PropTitle          = "Project name"
	PropTitleChecked   = "title checked"
	PropStatus         = "Status"
	PropAssignee       = "Assignee"
	PropAssignedTo     = "Assigned To"
	PropCreatedDate    = "Created Date"
	PropKPI            = "KPI"
	PropChecklist      = "Checklist"
	PropAccountability = "Accountability"
	PropRoles          = "Roles"
)

// Model wraps one fetched page.
type Model struct {
	page *notion.Page
}

// NewModel builds a Model over a raw page snapshot.
func NewModel(p *notion.Page) *Model {
	return &Model{page: p}
}

// ID returns the normalized (hyphen-stripped) page identifier, the join
// key for all subsequent API calls against this page.
func (m *Model) ID() string {
	return notion.NormalizeID(m.page.ID)
}

// Title returns the page title text and whether a title property with
// at least one run exists.
func (m *Model) Title() (string, bool) {
	prop, ok := m.page.Properties[PropTitle]
	if !ok {
		// Fall back to whichever property carries the title kind.
		for _, p := range m.page.Properties {
			if p.Type == "title" {
				prop = p
				ok = true
				break
			}
		}
	}
	if !ok || len(prop.Title) == 0 {
		return "", false
	}
	run := prop.Title[0]
	if run.Text != nil {
		return run.Text.Content, true
	}
	if run.PlainText != "" {
		return run.PlainText, true
	}
	return "", false
}

// TitleChecked reports whether the naming rule has already evaluated
// this page.
func (m *Model) TitleChecked() bool {
	prop, ok := m.page.Properties[PropTitleChecked]
	return ok && prop.Checkbox != nil && *prop.Checkbox
}

// Status returns the status identifier, or empty when the Status
// property is absent.
func (m *Model) Status() string {
	prop, ok := m.page.Properties[PropStatus]
	if !ok || prop.Status == nil {
		return ""
	}
	return prop.Status.ID
}

// Assignees returns the Assignee people list (empty when absent).
func (m *Model) Assignees() []notion.User {
	return m.people(PropAssignee)
}

// AssignedTo returns the Assigned To people list. Only read on relation
// target pages by the accountability rule.
func (m *Model) AssignedTo() []notion.User {
	return m.people(PropAssignedTo)
}

func (m *Model) people(name string) []notion.User {
	prop, ok := m.page.Properties[name]
	if !ok {
		return nil
	}
	return prop.People
}

// Owner returns the created_by actor, or nil when unavailable.
func (m *Model) Owner() *notion.User {
	return m.page.CreatedBy
}

// LastEditor returns the last_edited_by actor identifier. The second
// result distinguishes "unavailable" from an empty identifier.
func (m *Model) LastEditor() (string, bool) {
	if m.page.LastEditedBy == nil || m.page.LastEditedBy.ID == "" {
		return "", false
	}
	return m.page.LastEditedBy.ID, true
}

// DaysSinceLastEdit returns the integer floor of (now - last_edited_time)
// in days, computed in UTC.
func (m *Model) DaysSinceLastEdit(now time.Time) (int, error) {
	raw := m.page.LastEditedTime
	if raw == "" {
		return 0, fmt.Errorf("page %s has no last_edited_time", m.ID())
	}
	edited, err := time.Parse(time.RFC3339, strings.Replace(raw, "Z", "+00:00", 1))
	if err != nil {
		return 0, fmt.Errorf("parse last_edited_time %q: %w", raw, err)
	}
	days := int(now.UTC().Sub(edited.UTC()).Hours() / 24)
	return days, nil
}

// IsPastDue reports whether the Created Date range has an end bound
// strictly before now (UTC). An absent end bound is never past due.
func (m *Model) IsPastDue(now time.Time) bool {
	prop, ok := m.page.Properties[PropCreatedDate]
	if !ok || prop.Date == nil || prop.Date.End == "" {
		return false
	}
	end, err := parseDate(prop.Date.End)
	if err != nil {
		return false
	}
	return now.UTC().After(end)
}

// HasChecklistOrKPI reports whether either accountability relation list
// is non-empty.
func (m *Model) HasChecklistOrKPI() bool {
	return len(m.relations(PropKPI)) > 0 || len(m.relations(PropChecklist)) > 0
}

// HasAccountability reports whether the page exposes the Accountability
// property at all; it gates whether the accountability rule considers
// this page.
func (m *Model) HasAccountability() bool {
	_, ok := m.page.Properties[PropAccountability]
	return ok
}

// Roles returns the Roles relation references (empty when absent).
func (m *Model) Roles() []notion.RelationRef {
	return m.relations(PropRoles)
}

func (m *Model) relations(name string) []notion.RelationRef {
	prop, ok := m.page.Properties[name]
	if !ok {
		return nil
	}
	return prop.Relation
}

// parseDate accepts both date-only and full timestamp bounds, pinned
// to UTC.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
