package lint

import (
	"errors"
	"fmt"
	pathpkg "path"
	"strings"
)

// ErrUnknownRuleID is returned when registry lookup fails.
var ErrUnknownRuleID = errors.New("unknown rule id")

// ErrDuplicateRuleID is returned when registry receives duplicate IDs.
var ErrDuplicateRuleID = errors.New("duplicate rule id")

// ErrInvalidRuleGlob is returned when a glob pattern is malformed.
var ErrInvalidRuleGlob = errors.New("invalid rule glob")

// Registry stores rules with deterministic ordering. Selection patterns and
// the resulting diagnostic order both follow registration order.
type Registry struct {
	ordered []Rule
	index   map[string]Rule
}

// NewRegistry creates a registry from the given rules.
func NewRegistry(rules []Rule) (*Registry, error) {
	ordered := make([]Rule, 0, len(rules))
	index := make(map[string]Rule, len(rules))

	for _, rule := range rules {
		id := rule.Descriptor().ID

		if _, exists := index[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRuleID, id)
		}

		index[id] = rule
		ordered = append(ordered, rule)
	}

	return &Registry{
		ordered: ordered,
		index:   index,
	}, nil
}

// All returns all rules in stable order.
func (r *Registry) All() []Rule {
	rules := make([]Rule, len(r.ordered))
	copy(rules, r.ordered)

	return rules
}

// Descriptors returns metadata for all rules in stable order.
func (r *Registry) Descriptors() []Descriptor {
	descriptors := make([]Descriptor, 0, len(r.ordered))

	for _, rule := range r.ordered {
		descriptors = append(descriptors, rule.Descriptor())
	}

	return descriptors
}

// Rule returns the rule registered under the given ID.
func (r *Registry) Rule(id string) (Rule, bool) {
	rule, ok := r.index[id]

	return rule, ok
}

// Select resolves the given patterns against registered rule IDs. Patterns
// may be exact IDs or path globs; no patterns means all rules. The result
// preserves registration order and contains no duplicates.
func (r *Registry) Select(patterns []string) ([]Rule, error) {
	if len(patterns) == 0 {
		return r.All(), nil
	}

	selectedSet := make(map[string]struct{}, len(r.ordered))

	for _, rawPattern := range patterns {
		pattern := strings.TrimSpace(rawPattern)

		ids, err := r.resolvePattern(pattern)
		if err != nil {
			return nil, err
		}

		for _, id := range ids {
			selectedSet[id] = struct{}{}
		}
	}

	selected := make([]Rule, 0, len(selectedSet))

	for _, rule := range r.ordered {
		if _, ok := selectedSet[rule.Descriptor().ID]; ok {
			selected = append(selected, rule)
		}
	}

	return selected, nil
}

func (r *Registry) resolvePattern(pattern string) ([]string, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleID, pattern)
	}

	if !hasGlobMeta(pattern) {
		if _, exists := r.index[pattern]; !exists {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRuleID, pattern)
		}

		return []string{pattern}, nil
	}

	matched := make([]string, 0, len(r.ordered))

	for _, rule := range r.ordered {
		id := rule.Descriptor().ID

		isMatch, err := pathpkg.Match(pattern, id)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidRuleGlob, pattern, err)
		}

		if isMatch {
			matched = append(matched, id)
		}
	}

	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRuleID, pattern)
	}

	return matched, nil
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
