package rules

import "fmt"

// Outcome is the explicit result of one boundary write. Failures are
// recorded, never raised: a single page's write failure must not abort
// the enclosing pass.
type Outcome struct {
	Action string
	PageID string
	Err    error
}

// Failed reports whether the action did not take effect.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Report summarizes one rule pass over one workspace.
type Report struct {
	Rule      string
	Workspace string
	// Pages is the number of pages enumerated, zero when the listing
	// itself failed.
	Pages int
	// ListingFailed marks a workspace-level abort: the page listing
	// could not be fetched, so no page was evaluated.
	ListingFailed bool
	Outcomes      []Outcome
}

// Applied counts actions that took effect.
func (r *Report) Applied() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Failed() {
			n++
		}
	}
	return n
}

// Failures counts actions that did not take effect.
func (r *Report) Failures() int {
	return len(r.Outcomes) - r.Applied()
}

// Summary renders the short human-readable pass result.
func (r *Report) Summary() string {
	if r.ListingFailed {
		return fmt.Sprintf("%s: %s: no pages available", r.Rule, r.Workspace)
	}
	return fmt.Sprintf("%s: %s: %d pages, %d actions applied, %d failed",
		r.Rule, r.Workspace, r.Pages, r.Applied(), r.Failures())
}
