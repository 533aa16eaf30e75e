// Package categorize assigns spending categories to transaction
// descriptions using ordered keyword rules. Matching is done in a single
// pass with an Aho-Corasick matcher; rule order decides ties, so the
// first rule in the table always wins.
package categorize

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// Category labels. Exactly one is assigned per transaction.
const (
	CategoryFood         = "Food"
	CategoryUPIPayment   = "UPI Payment"
	CategoryBankTransfer = "Bank Transfer"
	CategoryIncome       = "Income"
	CategoryUtilities    = "Utilities"
	CategoryOthers       = "Others"
)

// Rule maps a set of keywords to a category. Rules are evaluated in
// slice order; a lower index beats any later rule regardless of how many
// of its keywords match.
type Rule struct {
	Keywords []string
	Category string
}

// DefaultRules returns the fixed UPI statement rule table.
func DefaultRules() []Rule {
	return []Rule{
		{Keywords: []string{"zomato", "swiggy"}, Category: CategoryFood},
		{Keywords: []string{"googlepay", "paytm", "upi"}, Category: CategoryUPIPayment},
		{Keywords: []string{"imps", "transfer"}, Category: CategoryBankTransfer},
		{Keywords: []string{"interest", "salary"}, Category: CategoryIncome},
		{Keywords: []string{"recharge", "bill"}, Category: CategoryUtilities},
	}
}

// Engine is a keyword categorization engine. It pre-computes an
// Aho-Corasick state machine so every description is scanned once
// regardless of the number of keywords.
type Engine struct {
	matcher  *ahocorasick.Matcher
	patterns []string
	ruleIdx  []int // rule index per pattern, parallel to patterns
	rules    []Rule
}

// NewEngine builds an engine from ordered rules.
func NewEngine(rules []Rule) *Engine {
	e := &Engine{rules: rules}

	for i, rule := range rules {
		for _, kw := range rule.Keywords {
			cleaned := strings.ToLower(strings.TrimSpace(kw))
			if cleaned == "" {
				continue
			}
			e.patterns = append(e.patterns, cleaned)
			e.ruleIdx = append(e.ruleIdx, i)
		}
	}

	if len(e.patterns) > 0 {
		bytePatterns := make([][]byte, len(e.patterns))
		for i, p := range e.patterns {
			bytePatterns[i] = []byte(p)
		}
		e.matcher = ahocorasick.NewMatcher(bytePatterns)
	}

	return e
}

// Categorize returns the category of the first matching rule, or Others
// when no keyword occurs in the description. Matching is
// case-insensitive.
func (e *Engine) Categorize(description string) string {
	if e.matcher == nil {
		return CategoryOthers
	}

	matches := e.matcher.Match([]byte(strings.ToLower(description)))
	if len(matches) == 0 {
		return CategoryOthers
	}

	best := -1
	for _, idx := range matches {
		if idx < 0 || idx >= len(e.ruleIdx) {
			continue
		}
		if best == -1 || e.ruleIdx[idx] < best {
			best = e.ruleIdx[idx]
		}
	}
	if best == -1 {
		return CategoryOthers
	}
	return e.rules[best].Category
}

// CategorizeBatch categorizes descriptions in bulk, preserving order.
func (e *Engine) CategorizeBatch(descriptions []string) []string {
	out := make([]string, len(descriptions))
	for i, d := range descriptions {
		out[i] = e.Categorize(d)
	}
	return out
}

// Categories returns all category labels in display order.
func Categories() []string {
	return []string{
		CategoryFood,
		CategoryUPIPayment,
		CategoryBankTransfer,
		CategoryIncome,
		CategoryUtilities,
		CategoryOthers,
	}
}
