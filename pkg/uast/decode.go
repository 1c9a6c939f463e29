// Package uast provides host-side helpers for feeding externally parsed
// UAST trees to the lint engine. The engine never parses source text; trees
// arrive as JSON produced by an external parser.
package uast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

// ErrEmptyInput is returned when the input stream contains no tree.
var ErrEmptyInput = errors.New("no uast tree in input")

// DecodeTree reads a single UAST JSON object.
func DecodeTree(reader io.Reader) (*node.Node, error) {
	decoder := json.NewDecoder(reader)

	var root *node.Node

	err := decoder.Decode(&root)
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}

	if err != nil {
		return nil, fmt.Errorf("decode uast tree: %w", err)
	}

	return root, nil
}

// DecodeTrees reads a stream of UAST JSON objects, one per file, until EOF.
// This matches the output of an external `parse` step piped over stdin.
func DecodeTrees(reader io.Reader) ([]*node.Node, error) {
	decoder := json.NewDecoder(reader)

	var trees []*node.Node

	for {
		var root *node.Node

		err := decoder.Decode(&root)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("decode uast tree %d: %w", len(trees), err)
		}

		trees = append(trees, root)
	}

	if len(trees) == 0 {
		return nil, ErrEmptyInput
	}

	return trees, nil
}
