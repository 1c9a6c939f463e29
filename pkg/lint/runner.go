package lint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

// ErrMalformedTree is returned when a host-supplied tree violates the node
// shape contract. The error is fatal for that file's analysis only; other
// files are unaffected.
var ErrMalformedTree = errors.New("malformed uast tree")

// Runner evaluates a set of rules against one file's tree at a time.
// A Runner holds no per-file state, so one instance may be shared across
// goroutines as long as each call gets its own tree.
type Runner struct {
	rules  []Rule
	logger *slog.Logger
}

// NewRunner creates a Runner over the given rules. A nil logger falls back
// to the process default.
func NewRunner(rules []Rule, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{rules: rules, logger: logger}
}

// LintFile runs every rule over the tree and returns the collected
// diagnostics, ordered by rule registration order and source order within a
// rule. Each rule gets a fresh visitor, so repeated calls on the same
// unmodified tree yield identical results.
func (r *Runner) LintFile(ctx context.Context, file string, root *node.Node) ([]Diagnostic, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("lint %s: %w", file, err)
	}

	if err := validateTree(root); err != nil {
		return nil, fmt.Errorf("lint %s: %w", file, err)
	}

	traverser := NewTraverser()
	visitors := make([]RuleVisitor, 0, len(r.rules))

	for _, rule := range r.rules {
		visitor := rule.NewVisitor()
		visitors = append(visitors, visitor)
		traverser.RegisterVisitor(visitor)
	}

	traverser.Traverse(root)

	var diagnostics []Diagnostic

	for idx, visitor := range visitors {
		found := visitor.Diagnostics()

		for _, diagnostic := range found {
			diagnostic.File = file
			diagnostics = append(diagnostics, diagnostic)
		}

		if len(found) > 0 {
			r.logger.Debug("rule reported diagnostics",
				slog.String("file", file),
				slog.String("rule", r.rules[idx].Descriptor().ID),
				slog.Int("count", len(found)))
		}
	}

	return diagnostics, nil
}

// validateTree fails fast on shape violations so rules never have to defend
// against malformed nodes mid-traversal.
func validateTree(root *node.Node) error {
	if root == nil {
		return fmt.Errorf("%w: nil root", ErrMalformedTree)
	}

	broken := root.Find(func(n *node.Node) bool {
		if n == nil {
			return true
		}

		switch n.Type {
		case node.UASTCall, node.UASTNew:
			_, ok := node.Callee(n)

			return !ok
		case node.UASTMember:
			_, ok := node.Receiver(n)

			return !ok
		default:
			return false
		}
	})

	if len(broken) > 0 {
		return fmt.Errorf("%w: %s has no callee or receiver", ErrMalformedTree, broken[0])
	}

	return nil
}
