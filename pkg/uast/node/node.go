// Package node provides the canonical UAST node structure consumed by the
// lint engine. Trees are produced by an external parser and arrive already
// normalized; this package only reads them.
package node

import (
	"slices"
	"strconv"
	"strings"
)

// UAST node type constants for the subset of shapes the lint rules inspect.
const (
	UASTFile       = "File"
	UASTClass      = "Class"
	UASTMethod     = "Method"
	UASTProperty   = "Property"
	UASTParameter  = "Parameter"
	UASTCall       = "Call"
	UASTNew        = "New"
	UASTMember     = "Member"
	UASTIdentifier = "Identifier"
	UASTFunction   = "Function"
	UASTLambda     = "Lambda"
	UASTLiteral    = "Literal"
	UASTBlock      = "Block"
	UASTSynthetic  = "Synthetic"
)

// Role constants for syntactic and semantic labeling.
const (
	RoleName        = "Name"
	RoleStatic      = "Static"
	RoleConstant    = "Constant"
	RolePublic      = "Public"
	RoleArgument    = "Argument"
	RoleDeclaration = "Declaration"
	RoleCall        = "Call"
	RoleBody        = "Body"
)

// Property keys the producer stamps onto nodes.
const (
	PropName       = "name"
	PropAbstract   = "abstract"
	PropVisibility = "visibility"
)

// Role represents a syntactic/semantic label for a node.
type Role string

// Type represents a type label for a node.
type Type string

// Positions represents the byte and line/col offsets for a node.
// All fields are 1-based except StartOffset/EndOffset, which are byte offsets.
type Positions struct {
	StartLine   uint `json:"start_line,omitempty"`
	StartCol    uint `json:"start_col,omitempty"`
	StartOffset uint `json:"start_offset,omitempty"`
	EndLine     uint `json:"end_line,omitempty"`
	EndCol      uint `json:"end_col,omitempty"`
	EndOffset   uint `json:"end_offset,omitempty"`
}

// Node is the canonical UAST node structure.
//
// Fields:
//
//	Type: node type (e.g., "Class", "Call").
//	Token: string value or token for leaf nodes.
//	Roles: semantic/syntactic roles (see Role).
//	Pos: source code position info (optional).
//	Props: additional properties (language-specific).
//	Children: child nodes (ordered, source order).
//
// Nodes are owned by the host and treated as immutable for the duration of
// one traversal.
type Node struct {
	Token    string            `json:"token,omitempty"`
	Type     Type              `json:"type,omitempty"`
	Roles    []Role            `json:"roles,omitempty"`
	Pos      *Positions        `json:"pos,omitempty"`
	Props    map[string]string `json:"props,omitempty"`
	Children []*Node           `json:"children,omitempty"`
}

// AddChild appends a child node. Used by hosts and tests building trees.
func (targetNode *Node) AddChild(child *Node) {
	targetNode.Children = append(targetNode.Children, child)
}

// HasAnyType checks if the node has any of the given types.
func (targetNode *Node) HasAnyType(nodeTypes ...Type) bool {
	if targetNode == nil {
		return false
	}

	return slices.Contains(nodeTypes, targetNode.Type)
}

// HasAnyRole checks if the node has any of the given roles.
func (targetNode *Node) HasAnyRole(roles ...Role) bool {
	if targetNode == nil || len(targetNode.Roles) == 0 {
		return false
	}

	for _, role := range roles {
		if slices.Contains(targetNode.Roles, role) {
			return true
		}
	}

	return false
}

// HasAllRoles checks if the node has all of the given roles.
func (targetNode *Node) HasAllRoles(roles ...Role) bool {
	if targetNode == nil || len(targetNode.Roles) == 0 {
		return false
	}

	for _, role := range roles {
		if !slices.Contains(targetNode.Roles, role) {
			return false
		}
	}

	return true
}

// Find returns all nodes in the tree (including root) for which
// predicate(node) is true. Traversal is pre-order. Returns nil if the
// receiver is nil.
func (targetNode *Node) Find(predicate func(*Node) bool) []*Node {
	if targetNode == nil {
		return nil
	}

	var result []*Node

	stack := []*Node{targetNode}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if predicate(curr) {
			result = append(result, curr)
		}

		if curr == nil {
			continue
		}

		for idx := len(curr.Children) - 1; idx >= 0; idx-- {
			stack = append(stack, curr.Children[idx])
		}
	}

	return result
}

// String returns a compact representation used in logs and test failures.
func (targetNode *Node) String() string {
	if targetNode == nil {
		return "nil"
	}

	var buf strings.Builder

	buf.WriteString("Node{Type:")
	buf.WriteString(string(targetNode.Type))

	if targetNode.Token != "" {
		buf.WriteString(",Token:")
		buf.WriteString(targetNode.Token)
	}

	if name, ok := targetNode.Props[PropName]; ok {
		buf.WriteString(",Name:")
		buf.WriteString(name)
	}

	if len(targetNode.Children) > 0 {
		buf.WriteString(",Children:")
		buf.WriteString(strconv.Itoa(len(targetNode.Children)))
	}

	buf.WriteString("}")

	return buf.String()
}
