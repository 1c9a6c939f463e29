package lint

import (
	"fmt"

	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

// Kind identifies the class of violation a diagnostic reports.
type Kind string

// Diagnostic kinds.
const (
	KindMissingSingleton       Kind = "missing-singleton"
	KindMissingTeardown        Kind = "missing-teardown"
	KindMissingClearBeforeType Kind = "missing-clear-before-type"
)

// Diagnostic is a single reported rule violation. The anchor node ties the
// finding back to a source span; File is stamped by the runner. Records are
// immutable once created.
type Diagnostic struct {
	RuleID  string     `json:"rule" yaml:"rule"`
	Kind    Kind       `json:"kind" yaml:"kind"`
	Message string     `json:"message" yaml:"message"`
	File    string     `json:"file,omitempty" yaml:"file,omitempty"`
	Node    *node.Node `json:"-" yaml:"-"`
}

// Position returns the anchor's source position, or nil when the host
// supplied no span.
func (d Diagnostic) Position() *node.Positions {
	if d.Node == nil {
		return nil
	}

	return d.Node.Pos
}

// Reporter collects diagnostics for one rule during one file's traversal.
// The engine never writes to output itself; the host receives the collected
// list and decides presentation and suppression.
type Reporter struct {
	ruleID      string
	diagnostics []Diagnostic
}

// NewReporter creates a Reporter for the given rule ID.
func NewReporter(ruleID string) *Reporter {
	return &Reporter{ruleID: ruleID}
}

// Reportf records a diagnostic anchored at the given node.
func (r *Reporter) Reportf(anchor *node.Node, kind Kind, format string, args ...any) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		RuleID:  r.ruleID,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Node:    anchor,
	})
}

// Diagnostics returns the collected diagnostics in emission order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}
