package text

import (
	"context"
	"io"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var _ TextReplacer = (*SimpleTextReplacer)(nil)

// SimpleTextReplacer implements TextReplacer using literal string replacement.
//
// All rules are applied in a single left-to-right pass, so text inserted by one
// rule is never matched again by a later one. When two rules match at the same
// position the earlier rule wins.
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	// Read all content
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	// Create result with original content
	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	modified, count := r.ReplaceString(string(originalContent), rules)
	if count == 0 {
		return result, nil
	}

	result.ReplacementCount = count
	if modified != string(originalContent) {
		result.WasModified = true
		result.ModifiedContent = []byte(modified)
	}

	return result, nil
}

// ReplaceString implements TextReplacer.ReplaceString
func (r *SimpleTextReplacer) ReplaceString(s string, rules []ReplacementRule) (string, int) {
	oldnew := make([]string, 0, len(rules)*2)
	count := 0
	for _, rule := range rules {
		// Skip empty rules and rules that cannot match
		if rule.FromText == "" || !strings.Contains(s, rule.FromText) {
			continue
		}
		count += strings.Count(s, rule.FromText)
		oldnew = append(oldnew, rule.FromText, rule.ToText)
	}

	if len(oldnew) == 0 {
		return s, 0
	}

	return strings.NewReplacer(oldnew...).Replace(s), count
}

// ValidateRules implements TextReplacer.ValidateRules
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	seen := make(map[string]int, len(rules))
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
		if prev, ok := seen[rule.FromText]; ok {
			return errors.Errorf("rule %d: from_text %q already used by rule %d", i, rule.FromText, prev)
		}
		seen[rule.FromText] = i
	}
	return nil
}
