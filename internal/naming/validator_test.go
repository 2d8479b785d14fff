package naming

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestHeuristicValidity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"present tense is", "the drawer is stocked", true},
		{"present perfect have been", "supplies have been organized", true},
		{"present tense are", "supplies are organized", true},
		{"present perfect has been", "drawer has been stocked", true},
		{"mixed case", "The Drawer Is Stocked", true},
		{"project codename", "Q3 Planning", false},
		{"single word", "Inventory", false},
		{"connective without subject", "is stocked", false},
		{"empty", "", false},
	}

	h := NewHeuristic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, _ := h.Classify(context.Background(), tt.input)
			if valid != tt.valid {
				t.Errorf("Classify(%q) valid = %v, want %v", tt.input, valid, tt.valid)
			}
		})
	}
}

func TestHeuristicSuggestion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"multi word", "Q3 Planning", "Q3 is Planning"},
		{"three words", "stock the drawer", "stock is the drawer"},
		{"single word", "Inventory", "Inventory is done"},
	}

	h := NewHeuristic()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, suggestion := h.Classify(context.Background(), tt.input)
			if valid {
				t.Fatalf("Classify(%q) unexpectedly valid", tt.input)
			}
			if suggestion != tt.want {
				t.Errorf("suggestion = %q, want %q", suggestion, tt.want)
			}
		})
	}
}

func TestHeuristicValidReturnsOriginal(t *testing.T) {
	h := NewHeuristic()
	valid, suggestion := h.Classify(context.Background(), "the drawer is stocked")
	if !valid {
		t.Fatal("expected valid")
	}
	if suggestion != "the drawer is stocked" {
		t.Errorf("suggestion = %q, want original name", suggestion)
	}
}

// stubClassifier returns a canned response or error.
type stubClassifier struct {
	response string
	err      error
	prompts  []string
}

func (s *stubClassifier) Classify(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestAIValidatorVerdicts(t *testing.T) {
	tests := []struct {
		name           string
		response       string
		wantValid      bool
		wantSuggestion string
	}{
		{
			name:           "valid verdict",
			response:       "valid\nthe drawer is stocked",
			wantValid:      true,
			wantSuggestion: "the drawer is stocked",
		},
		{
			name:           "invalid verdict with suggestion",
			response:       "invalid\nQ3 planning is complete",
			wantValid:      false,
			wantSuggestion: "Q3 planning is complete",
		},
		{
			name:           "case insensitive verdict with blank lines",
			response:       "\nVALID\n\nthe drawer is stocked\n",
			wantValid:      true,
			wantSuggestion: "the drawer is stocked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewAIValidator(&stubClassifier{response: tt.response})
			valid, suggestion := v.Classify(context.Background(), "whatever")
			if valid != tt.wantValid {
				t.Errorf("valid = %v, want %v", valid, tt.wantValid)
			}
			if suggestion != tt.wantSuggestion {
				t.Errorf("suggestion = %q, want %q", suggestion, tt.wantSuggestion)
			}
		})
	}
}

func TestAIValidatorFallsBack(t *testing.T) {
	tests := []struct {
		name string
		stub *stubClassifier
	}{
		{"classifier error", &stubClassifier{err: errors.New("rate limited")}},
		{"single line response", &stubClassifier{response: "valid"}},
		{"garbage verdict", &stubClassifier{response: "maybe\nwho knows"}},
		{"empty response", &stubClassifier{response: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewAIValidator(tt.stub)

			// Heuristic accepts this one regardless of classifier state.
			valid, suggestion := v.Classify(context.Background(), "the drawer is stocked")
			if !valid {
				t.Error("fallback rejected a valid name")
			}
			if suggestion != "the drawer is stocked" {
				t.Errorf("suggestion = %q", suggestion)
			}

			// And rejects this one, with the heuristic rewrite.
			valid, suggestion = v.Classify(context.Background(), "Q3 Planning")
			if valid {
				t.Error("fallback accepted an invalid name")
			}
			if suggestion != "Q3 is Planning" {
				t.Errorf("suggestion = %q, want %q", suggestion, "Q3 is Planning")
			}
		})
	}
}

func TestAIValidatorPromptContainsName(t *testing.T) {
	stub := &stubClassifier{response: "valid\nthe drawer is stocked"}
	v := NewAIValidator(stub)
	v.Classify(context.Background(), "the drawer is stocked")

	if len(stub.prompts) != 1 {
		t.Fatalf("classifier called %d times, want 1", len(stub.prompts))
	}
	if got := stub.prompts[0]; !strings.Contains(got, "the drawer is stocked") {
		t.Errorf("prompt missing project name: %q", got)
	}
}
