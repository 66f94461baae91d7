package text

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// lineSpace is whitespace inside a line, including \v, NBSP, U+0085, the
// information separators and every Unicode space separator.
const lineSpace = `[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]*`

// CollapseBlankLinesRule folds two or more blank (or whitespace-only) lines into one.
var CollapseBlankLinesRule = ReplacementRule{
	Name:        "collapse-blank-lines",
	Pattern:     `\n` + lineSpace + `\n` + lineSpace + `\n`,
	Replacement: "\n\n",
}

// RegexReplacer implements TextReplacer with RE2 patterns. Compiled patterns are
// cached, so one replacer can be shared between goroutines.
type RegexReplacer struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

var _ TextReplacer = (*RegexReplacer)(nil)

// NewRegexReplacer creates a new RegexReplacer
func NewRegexReplacer() *RegexReplacer {
	return &RegexReplacer{
		cache: map[string]*regexp.Regexp{},
	}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *RegexReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	logger := zerolog.Ctx(ctx)

	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
		Rules:           make([]RuleResult, 0, len(rules)),
	}

	current := string(originalContent)
	for i, rule := range rules {
		if err := ctx.Err(); err != nil {
			return nil, errors.Errorf("applying rules: %w", err)
		}

		// empty patterns would match between every character
		if rule.Pattern == "" {
			continue
		}

		re, err := r.compile(rule.Pattern)
		if err != nil {
			return nil, errors.Errorf("rule %d (%s): %w", i, ruleName(i, rule), err)
		}

		matches := len(re.FindAllStringIndex(current, -1))
		if matches > 0 {
			current = re.ReplaceAllLiteralString(current, rule.Replacement)
			result.ReplacementCount += matches
		}

		logger.Debug().Str("rule", ruleName(i, rule)).Int("matches", matches).Msg("applied rule")
		result.Rules = append(result.Rules, RuleResult{Name: ruleName(i, rule), Matches: matches})
	}

	result.ModifiedContent = []byte(current)
	result.WasModified = current != string(originalContent)
	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *RegexReplacer) ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.Pattern == "" {
			return errors.Errorf("rule %d: pattern is required", i)
		}
		if _, err := r.compile(rule.Pattern); err != nil {
			return errors.Errorf("rule %d: invalid pattern: %w", i, err)
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			return errors.Errorf("rule %d: invalid file_filter_glob %q", i, rule.FileFilterGlob)
		}
	}
	return nil
}

func (r *RegexReplacer) compile(pattern string) (*regexp.Regexp, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if re, ok := r.cache[pattern]; ok {
		return re, nil
	}

	re, err := regexp.Compile("(?s)" + pattern)
	if err != nil {
		return nil, err
	}
	r.cache[pattern] = re
	return re, nil
}

func ruleName(i int, rule ReplacementRule) string {
	if rule.Name != "" {
		return rule.Name
	}
	return "rule-" + strconv.Itoa(i)
}

func matchGlob(pattern, path string) (bool, error) {
	return doublestar.Match(pattern, filepath.ToSlash(path))
}
