package text

import (
	"context"
	"io"
)

// ReplacementRule defines a single pattern substitution
type ReplacementRule struct {
	// Name identifies the rule in results and logs
	Name string

	// Pattern is an RE2 expression, always matched with `.` spanning line breaks
	Pattern string

	// Replacement is inserted literally in place of every match
	Replacement string

	// FileFilterGlob optionally restricts the rule to paths matching a doublestar glob
	FileFilterGlob string
}

// RuleResult records how a single rule affected the content
type RuleResult struct {
	Name    string
	Matches int
}

// ReplacementResult contains the results of a text replacement operation
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made across all rules
	ReplacementCount int

	// Rules holds one entry per applied rule, in application order
	Rules []RuleResult

	// OriginalContent is the content before replacements
	OriginalContent []byte

	// ModifiedContent is the content after replacements
	ModifiedContent []byte
}

// TextReplacer defines the interface for text replacement operations
type TextReplacer interface {
	// ReplaceText applies a set of replacement rules to the content
	// Returns a ReplacementResult containing the modified content and metadata
	ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error)

	// ValidateRules checks that all rules are valid
	ValidateRules(rules []ReplacementRule) error
}

// Applies reports whether the rule should run against path.
// Rules without a filter apply everywhere.
func (r ReplacementRule) Applies(path string) bool {
	if r.FileFilterGlob == "" {
		return true
	}
	ok, err := matchGlob(r.FileFilterGlob, path)
	return err == nil && ok
}

// Filter returns the rules that apply to path, preserving order.
func Filter(rules []ReplacementRule, path string) []ReplacementRule {
	out := make([]ReplacementRule, 0, len(rules))
	for _, r := range rules {
		if r.Applies(path) {
			out = append(out, r)
		}
	}
	return out
}
