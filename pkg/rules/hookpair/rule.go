// Package hookpair enforces that paired setup/teardown test hooks are both
// present in a file. Presence is lexical: a setup call anywhere in the file
// (nested or not) counts, and the decision is only knowable after the whole
// tree has been visited.
package hookpair

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/testlint/pkg/lint"
	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

// RuleID identifies this rule in diagnostics and configuration.
const RuleID = "hook-pair"

// ErrInvalidOptions is returned when the rule is constructed with an
// unsupported option shape.
var ErrInvalidOptions = errors.New("invalid hook-pair options")

// HookPair names one setup/teardown hook pairing.
type HookPair struct {
	Setup    string
	Teardown string
}

// Options configures which hook names pair up.
type Options struct {
	Pairs []HookPair
}

// DefaultOptions pairs the conventional before/after file-level hooks.
func DefaultOptions() Options {
	return Options{Pairs: []HookPair{{Setup: "before", Teardown: "after"}}}
}

// Rule implements the hook pairing check.
type Rule struct {
	opts Options
}

// New creates the rule with default options.
func New() *Rule {
	rule, _ := NewWithOptions(DefaultOptions())

	return rule
}

// NewWithOptions creates the rule with the given options, failing fast on
// unsupported shapes before any traversal begins.
func NewWithOptions(opts Options) (*Rule, error) {
	if len(opts.Pairs) == 0 {
		return nil, fmt.Errorf("%w: no hook pairs", ErrInvalidOptions)
	}

	for _, pair := range opts.Pairs {
		if pair.Setup == "" || pair.Teardown == "" {
			return nil, fmt.Errorf("%w: empty hook name in pair %+v", ErrInvalidOptions, pair)
		}

		if pair.Setup == pair.Teardown {
			return nil, fmt.Errorf("%w: setup and teardown are both %q", ErrInvalidOptions, pair.Setup)
		}
	}

	return &Rule{opts: opts}, nil
}

// Descriptor returns stable rule metadata.
func (r *Rule) Descriptor() lint.Descriptor {
	return lint.Descriptor{
		ID:          RuleID,
		Description: "files with a setup hook must also register the paired teardown hook",
	}
}

// NewVisitor returns a fresh per-file visitor with empty accumulator state.
func (r *Rule) NewVisitor() lint.RuleVisitor {
	return &visitor{
		opts:         r.opts,
		firstSetup:   make([]*node.Node, len(r.opts.Pairs)),
		teardownSeen: make([]bool, len(r.opts.Pairs)),
		reporter:     lint.NewReporter(RuleID),
	}
}

// visitor accumulates whole-file state: the first setup call seen and a
// teardown flag per configured pair. Absence of a teardown can only be
// decided once the full tree has been visited.
type visitor struct {
	opts         Options
	firstSetup   []*node.Node
	teardownSeen []bool
	reporter     *lint.Reporter
}

// OnEnter records hook calls. Only bare-identifier calls whose first
// argument is an inline function value count for either side; calls passing
// strings, promises, or pre-bound function references are deliberately not
// matched.
func (v *visitor) OnEnter(n *node.Node, _ int) {
	if n.Type != node.UASTCall {
		return
	}

	callee, ok := node.Callee(n)
	if !ok || callee.Type != node.UASTIdentifier {
		return
	}

	hookName := callee.Token
	if hookName == "" {
		return
	}

	args := node.Arguments(n)
	if len(args) == 0 || !node.IsFunctionValue(args[0]) {
		return
	}

	for idx, pair := range v.opts.Pairs {
		switch hookName {
		case pair.Setup:
			if v.firstSetup[idx] == nil {
				v.firstSetup[idx] = n
			}
		case pair.Teardown:
			v.teardownSeen[idx] = true
		}
	}
}

// OnExit is part of the visitor contract; hooks are recorded on enter.
func (v *visitor) OnExit(_ *node.Node, _ int) {}

// OnTraversalEnd finalizes the per-file state: one diagnostic per pair whose
// setup hook occurred without its teardown, anchored at the first setup call
// in source order.
func (v *visitor) OnTraversalEnd() {
	for idx, pair := range v.opts.Pairs {
		if v.firstSetup[idx] == nil || v.teardownSeen[idx] {
			continue
		}

		v.reporter.Reportf(v.firstSetup[idx], lint.KindMissingTeardown,
			"File registers a '%s' hook without a matching '%s' hook; add '%s(() => {...})' to undo the setup, or disable this rule for the file.",
			pair.Setup, pair.Teardown, pair.Teardown)
	}
}

// Diagnostics returns the collected findings.
func (v *visitor) Diagnostics() []lint.Diagnostic {
	return v.reporter.Diagnostics()
}
