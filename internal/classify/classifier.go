// Package classify assigns ledger rows to settlement categories using ordered
// keyword rules. The first matching rule wins and rows matching nothing fall
// into CategoryOther, so classification is a total function.
//
// A Classifier is immutable once built and safe for concurrent use.
package classify

import (
	"strings"

	"arkmotors/internal/normalize"
	"arkmotors/pkg/models"
)

// Rule matches when the account label contains any Account keyword or the
// description contains any Description keyword.
type Rule struct {
	Category    Category `yaml:"category"`
	Account     []string `yaml:"account,omitempty"`
	Description []string `yaml:"description,omitempty"`
}

func (r Rule) matches(account, description string) bool {
	return containsAny(account, r.Account) || containsAny(description, r.Description)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Classifier holds the ordered rule chain and the income-type exclusion keywords
type Classifier struct {
	rules      []Rule
	exclusions []string
}

// New builds a classifier. Keywords are folded once here so matching is
// case-insensitive and independent of Unicode composition.
func New(rules []Rule, exclusions []string) *Classifier {
	c := &Classifier{
		rules:      make([]Rule, len(rules)),
		exclusions: foldAll(exclusions),
	}
	for i, r := range rules {
		c.rules[i] = Rule{
			Category:    r.Category,
			Account:     foldAll(r.Account),
			Description: foldAll(r.Description),
		}
	}
	return c
}

// Default returns a classifier using the built-in rules
func Default() *Classifier {
	return New(DefaultRules(), DefaultIncomeExclusions())
}

func foldAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = normalize.Fold(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Classify returns the category for an account label and description
func (c *Classifier) Classify(account, description string) Category {
	account = normalize.Fold(account)
	description = normalize.Fold(description)

	for _, r := range c.rules {
		if r.matches(account, description) {
			return r.Category
		}
	}
	return CategoryOther
}

// ClassifyEntry classifies a ledger entry
func (c *Classifier) ClassifyEntry(e models.LedgerEntry) Category {
	return c.Classify(e.AccountLabel, e.Description)
}

// ExcludesIncomeType reports whether an income type label marks a payment that
// does not count as employee labor cost (external, non-employee, ...).
func (c *Classifier) ExcludesIncomeType(label string) bool {
	label = normalize.Fold(strings.TrimSpace(label))
	if label == "" {
		return false
	}
	return containsAny(label, c.exclusions)
}

// Rules returns a copy of the folded rule chain
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}
