package naming

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mattjoyce/groundskeeper/internal/log"
)

// conventionPrompt demands the exact two-line contract the parser
// expects; anything else is treated as malformed.
const conventionPrompt = `Analyze if this project name follows GTD outcome-focused naming convention: %q

Rules:
1. Name should use present perfect ("has been") or present tense ("is"/"are") constructions
2. Name should describe a completed state
3. Name should be clear and specific

If invalid, suggest a better name following these rules.

Return exactly two lines:
Line 1: "valid" or "invalid"
Line 2: If invalid, suggest better name. If valid, return original name`

// TextClassifier is the external judging collaborator.
type TextClassifier interface {
	Classify(ctx context.Context, prompt string) (string, error)
}

// AIValidator asks the text classifier first and falls back to the
// self-contained heuristic whenever the classifier is unavailable,
// errors, or violates the two-line contract. Classifier failures never
// propagate to the caller.
type AIValidator struct {
	classifier TextClassifier
	fallback   *Heuristic
	logger     *slog.Logger
}

// NewAIValidator wraps a text classifier with the heuristic fallback.
func NewAIValidator(classifier TextClassifier) *AIValidator {
	return &AIValidator{
		classifier: classifier,
		fallback:   NewHeuristic(),
		logger:     log.WithComponent("naming"),
	}
}

// Classify implements Validator.
func (v *AIValidator) Classify(ctx context.Context, name string) (bool, string) {
	response, err := v.classifier.Classify(ctx, fmt.Sprintf(conventionPrompt, name))
	if err != nil {
		v.logger.Warn("classifier unavailable, using heuristic", "error", err)
		return v.fallback.Classify(ctx, name)
	}

	valid, suggestion, err := parseVerdict(response)
	if err != nil {
		v.logger.Warn("classifier response malformed, using heuristic", "error", err)
		return v.fallback.Classify(ctx, name)
	}
	return valid, suggestion
}

// parseVerdict enforces the two-line contract: line 1 is the literal
// token "valid" or "invalid" (case-insensitive), line 2 is the
// suggestion or the original name.
func parseVerdict(response string) (bool, string, error) {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) < 2 {
		return false, "", fmt.Errorf("expected two lines, got %d", len(lines))
	}

	var valid bool
	switch strings.ToLower(lines[0]) {
	case "valid":
		valid = true
	case "invalid":
		valid = false
	default:
		return false, "", fmt.Errorf("unrecognized verdict %q", lines[0])
	}
	return valid, lines[1], nil
}
