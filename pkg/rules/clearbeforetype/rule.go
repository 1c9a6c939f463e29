// Package clearbeforetype enforces that a fluent `.type(...)` interaction is
// immediately preceded by a `.clear()` call on its receiver. The check is
// purely structural and chain-local: computed member access and chains broken
// through intermediate variables are not matched and therefore not checked.
package clearbeforetype

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/testlint/pkg/lint"
	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

// RuleID identifies this rule in diagnostics and configuration.
const RuleID = "clear-before-type"

// ErrInvalidOptions is returned when the rule is constructed with an
// unsupported option shape.
var ErrInvalidOptions = errors.New("invalid clear-before-type options")

// Options configures the method names forming the checked chain.
type Options struct {
	TypeMethod  string
	ClearMethod string
}

// DefaultOptions returns the conventional Cypress method names.
func DefaultOptions() Options {
	return Options{TypeMethod: "type", ClearMethod: "clear"}
}

// Rule implements the clear-before-type check.
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
	if opts.TypeMethod == "" || opts.ClearMethod == "" {
		return nil, fmt.Errorf("%w: empty method name", ErrInvalidOptions)
	}

	return &Rule{opts: opts}, nil
}

// Descriptor returns stable rule metadata.
func (r *Rule) Descriptor() lint.Descriptor {
	return lint.Descriptor{
		ID:          RuleID,
		Description: "inputs must be cleared immediately before typing into them",
	}
}

// NewVisitor returns a fresh per-file visitor.
func (r *Rule) NewVisitor() lint.RuleVisitor {
	return &visitor{
		opts:     r.opts,
		reporter: lint.NewReporter(RuleID),
	}
}

type visitor struct {
	opts     Options
	reporter *lint.Reporter
}

// OnEnter inspects every `<receiver>.type(...)` invocation. The call is
// compliant when the receiver is itself a `.clear()` invocation; anything
// else anchors one diagnostic at the `.type(...)` call.
func (v *visitor) OnEnter(n *node.Node, _ int) {
	if n.Type != node.UASTCall {
		return
	}

	member, ok := methodAccess(n, v.opts.TypeMethod)
	if !ok {
		return
	}

	receiver, ok := node.Receiver(member)
	if !ok {
		return
	}

	if v.isClearCall(receiver) {
		return
	}

	v.reporter.Reportf(n, lint.KindMissingClearBeforeType,
		"Call '.%s()' on the input before '.%s(...)' so stale text never leaks into the typed value.",
		v.opts.ClearMethod, v.opts.TypeMethod)
}

// OnExit is part of the visitor contract; the check is decided on enter.
func (v *visitor) OnExit(_ *node.Node, _ int) {}

// OnTraversalEnd is part of the visitor contract; this rule carries no
// whole-file state.
func (v *visitor) OnTraversalEnd() {}

// Diagnostics returns the collected findings.
func (v *visitor) Diagnostics() []lint.Diagnostic {
	return v.reporter.Diagnostics()
}

// isClearCall reports whether expr is a `.clear(...)` method invocation.
func (v *visitor) isClearCall(expr *node.Node) bool {
	if expr == nil || expr.Type != node.UASTCall {
		return false
	}

	_, ok := methodAccess(expr, v.opts.ClearMethod)

	return ok
}

// methodAccess returns the Member callee of call when it is a property
// access invocation of the given method name.
func methodAccess(call *node.Node, method string) (*node.Node, bool) {
	callee, ok := node.Callee(call)
	if !ok || callee == nil || callee.Type != node.UASTMember {
		return nil, false
	}

	name, ok := node.Name(callee)
	if !ok || name != method {
		return nil, false
	}

	return callee, true
}
