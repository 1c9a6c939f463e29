// Package lint provides the rule-evaluation engine: a source-order tree
// traverser, a deterministic rule registry, and a per-file runner that
// collects diagnostics for the host.
package lint

// Descriptor contains stable rule metadata.
type Descriptor struct {
	ID          string
	Description string
}

// Rule is the capability every lint rule implements. NewVisitor returns a
// fresh visitor with fresh per-file state; the runner calls it once per file
// so no state is shared across files.
type Rule interface {
	Descriptor() Descriptor
	NewVisitor() RuleVisitor
}
