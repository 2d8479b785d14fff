// Package naming decides whether a project name follows the
// outcome-focused naming convention. The heuristic validator is fully
// self-contained; the AI-backed validator layers an external judge on
// top and falls back to the heuristic on any failure, so the naming
// rule always receives a usable verdict.
package naming

import (
	"context"
	"regexp"
	"strings"
)

// Validator classifies a project name. The returned suggestion is the
// original name when valid and a rewritten name when invalid.
type Validator interface {
	Classify(ctx context.Context, name string) (valid bool, suggestion string)
}

// Outcome-focused constructions: present tense ("is"/"are") or present
// perfect ("has been"/"have been"), with at least one token on each
// side of the connective.
var namePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^.+\s+is\s+.+`),
	regexp.MustCompile(`^.+\s+has\s+been\s+.+`),
	regexp.MustCompile(`^.+\s+are\s+.+`),
	regexp.MustCompile(`^.+\s+have\s+been\s+.+`),
}

// Heuristic is the deterministic pattern-based validator.
type Heuristic struct{}

// NewHeuristic creates the pattern-based validator.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Classify implements Validator.
func (h *Heuristic) Classify(_ context.Context, name string) (bool, string) {
	if h.isValid(name) {
		return true, name
	}
	return false, h.suggest(name)
}

func (h *Heuristic) isValid(name string) bool {
	lower := strings.ToLower(name)
	for _, p := range namePatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// suggest inserts "is" after the first token. A single-word name has no
// remainder to join, so it becomes "<name> is done".
func (h *Heuristic) suggest(name string) string {
	words := strings.Fields(name)
	switch len(words) {
	case 0:
		return name
	case 1:
		return words[0] + " is done"
	default:
		return words[0] + " is " + strings.Join(words[1:], " ")
	}
}
