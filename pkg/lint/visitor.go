package lint

import "github.com/Sumatoshi-tech/testlint/pkg/uast/node"

// NodeVisitor defines the interface for UAST visitors.
type NodeVisitor interface {
	OnEnter(n *node.Node, depth int)
	OnExit(n *node.Node, depth int)
}

// RuleVisitor extends NodeVisitor with the whole-file lifecycle a lint rule
// needs. OnTraversalEnd runs exactly once after the full tree has been
// visited; absence checks (state accumulated across the file) are decided
// there. Diagnostics returns the rule's findings in emission order.
type RuleVisitor interface {
	NodeVisitor
	OnTraversalEnd()
	Diagnostics() []Diagnostic
}
