// Package rules provides an optional YAML-based engine that assigns a
// category name to imported drafts by payee matching. Import itself never
// infers categories; the engine runs only when the caller opts in.
package rules

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/SuperB747/walnutbook-sub002/internal/domain"
)

// MatchType defines how patterns are matched against payee strings.
type MatchType string

const (
	// MatchTypeExact requires the pattern to match the entire payee.
	MatchTypeExact MatchType = "exact"
	// MatchTypeContains requires the pattern to be a substring of the payee.
	MatchTypeContains MatchType = "contains"
)

// Rule maps a payee pattern to a category name. Higher-priority rules win;
// ties resolve to the rule listed first.
type Rule struct {
	Name      string    `yaml:"name"`
	Pattern   string    `yaml:"pattern"`
	MatchType MatchType `yaml:"match_type"`
	Priority  int       `yaml:"priority"`
	Category  string    `yaml:"category"`
}

func (r *Rule) validate() error {
	if strings.TrimSpace(r.Pattern) == "" {
		return fmt.Errorf("rule %q: pattern cannot be empty", r.Name)
	}
	if r.MatchType != MatchTypeExact && r.MatchType != MatchTypeContains {
		return fmt.Errorf("rule %q: match_type must be %q or %q", r.Name, MatchTypeExact, MatchTypeContains)
	}
	if r.Priority < 0 || r.Priority > 999 {
		return fmt.Errorf("rule %q: priority %d out of range [0, 999]", r.Name, r.Priority)
	}
	if strings.TrimSpace(r.Category) == "" {
		return fmt.Errorf("rule %q: category cannot be empty", r.Name)
	}
	return nil
}

// matches checks the pattern against a payee, case-insensitively.
func (r *Rule) matches(payee string) bool {
	p := strings.ToLower(strings.TrimSpace(payee))
	pattern := strings.ToLower(strings.TrimSpace(r.Pattern))
	if r.MatchType == MatchTypeExact {
		return p == pattern
	}
	return strings.Contains(p, pattern)
}

// Engine holds a validated, priority-sorted rule set.
type Engine struct {
	rules []Rule
}

type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// NewEngine parses and validates a YAML rule document.
func NewEngine(data []byte) (*Engine, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}

	for i := range f.Rules {
		if err := f.Rules[i].validate(); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(f.Rules, func(i, j int) bool {
		return f.Rules[i].Priority > f.Rules[j].Priority
	})

	return &Engine{rules: f.Rules}, nil
}

// LoadFromFile reads a rule file from disk.
func LoadFromFile(path string) (*Engine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	return NewEngine(data)
}

// Len returns the number of loaded rules.
func (e *Engine) Len() int { return len(e.rules) }

// Categorize returns the category name for a payee, or "" when no rule
// matches.
func (e *Engine) Categorize(payee string) string {
	for _, r := range e.rules {
		if r.matches(payee) {
			return r.Category
		}
	}
	return ""
}

// Apply sets Category on every draft a rule matches, leaving the rest
// untouched. Returns how many drafts were categorized.
func (e *Engine) Apply(drafts []domain.DraftTransaction) int {
	n := 0
	for i := range drafts {
		if drafts[i].Category != "" {
			continue
		}
		if cat := e.Categorize(drafts[i].Payee); cat != "" {
			drafts[i].Category = cat
			n++
		}
	}
	return n
}
