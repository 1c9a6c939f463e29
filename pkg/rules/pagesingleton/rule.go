// Package pagesingleton enforces the page-object convention: every concrete
// class named with the page suffix must expose a single canonical singleton
// accessor field.
package pagesingleton

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/testlint/pkg/lint"
	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

// RuleID identifies this rule in diagnostics and configuration.
const RuleID = "page-singleton"

// ErrInvalidOptions is returned when the rule is constructed with an
// unsupported option shape.
var ErrInvalidOptions = errors.New("invalid page-singleton options")

// Options configures the naming convention the rule enforces.
type Options struct {
	// Suffix selects which classes the rule applies to (name match on the
	// class name's tail).
	Suffix string

	// FieldName is the required singleton field name.
	FieldName string
}

// DefaultOptions returns the conventional configuration.
func DefaultOptions() Options {
	return Options{Suffix: "Page", FieldName: "INSTANCE"}
}

// Rule implements the singleton field check.
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
	if opts.Suffix == "" {
		return nil, fmt.Errorf("%w: empty suffix", ErrInvalidOptions)
	}

	if opts.FieldName == "" {
		return nil, fmt.Errorf("%w: empty field name", ErrInvalidOptions)
	}

	return &Rule{opts: opts}, nil
}

// Descriptor returns stable rule metadata.
func (r *Rule) Descriptor() lint.Descriptor {
	return lint.Descriptor{
		ID:          RuleID,
		Description: "page classes must declare a public static readonly singleton field",
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

// OnEnter inspects class declarations; all other node kinds are ignored.
func (v *visitor) OnEnter(n *node.Node, _ int) {
	if n.Type != node.UASTClass {
		return
	}

	v.checkClass(n)
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

func (v *visitor) checkClass(class *node.Node) {
	name, ok := node.Name(class)
	if !ok || !strings.HasSuffix(name, v.opts.Suffix) {
		return
	}

	if node.IsAbstract(class) {
		return
	}

	// Classes with a parameterized constructor cannot be default-constructed
	// and are skipped entirely.
	if !defaultConstructible(class) {
		return
	}

	for _, member := range class.Children {
		if v.isSingletonField(member, name) {
			return
		}
	}

	// A near-matching field (wrong modifiers, wrong initializer) reports the
	// same message as total absence.
	v.reporter.Reportf(class, lint.KindMissingSingleton,
		"Class '%s' must declare: public static readonly %s = new %s();",
		name, v.opts.FieldName, name)
}

// defaultConstructible reports whether the class has no constructor or a
// constructor with an empty parameter list.
func defaultConstructible(class *node.Node) bool {
	for _, member := range class.Children {
		if member.Type != node.UASTMethod {
			continue
		}

		memberName, ok := node.Name(member)
		if !ok || memberName != "constructor" {
			continue
		}

		for _, child := range member.Children {
			if child.Type == node.UASTParameter {
				return false
			}
		}

		return true
	}

	return true
}

// isSingletonField checks a direct class member against all five singleton
// conditions: property kind, static, required name, readonly, public, and a
// zero-argument `new <Class>()` initializer.
func (v *visitor) isSingletonField(member *node.Node, className string) bool {
	if member.Type != node.UASTProperty {
		return false
	}

	memberName, ok := node.Name(member)
	if !ok || memberName != v.opts.FieldName {
		return false
	}

	if !member.HasAllRoles(node.RoleStatic, node.RoleConstant) {
		return false
	}

	visibility, ok := node.Visibility(member)
	if !ok || visibility != "public" {
		return false
	}

	return isSelfConstruction(initializer(member), className)
}

// initializer returns the property's value expression: the first child not
// carrying the Name role.
func initializer(property *node.Node) *node.Node {
	for _, child := range property.Children {
		if child.HasAnyRole(node.RoleName) {
			continue
		}

		return child
	}

	return nil
}

// isSelfConstruction reports whether expr is `new <className>()` with zero
// arguments.
func isSelfConstruction(expr *node.Node, className string) bool {
	if expr == nil || expr.Type != node.UASTNew {
		return false
	}

	callee, ok := node.Callee(expr)
	if !ok {
		return false
	}

	constructed, ok := node.Name(callee)
	if !ok || constructed != className {
		return false
	}

	return len(node.Arguments(expr)) == 0
}
