package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

func TestNode_HasAnyType(t *testing.T) {
	t.Parallel()

	call := &node.Node{Type: node.UASTCall}

	assert.True(t, call.HasAnyType(node.UASTCall, node.UASTNew))
	assert.False(t, call.HasAnyType(node.UASTClass))

	var nilNode *node.Node

	assert.False(t, nilNode.HasAnyType(node.UASTCall))
}

func TestNode_HasAnyRole(t *testing.T) {
	t.Parallel()

	property := &node.Node{Roles: []node.Role{node.RoleStatic}}

	assert.True(t, property.HasAnyRole(node.RoleStatic, node.RoleConstant))
	assert.False(t, property.HasAnyRole(node.RoleConstant))
	assert.False(t, (&node.Node{}).HasAnyRole(node.RoleStatic))
}

func TestNode_HasAllRoles(t *testing.T) {
	t.Parallel()

	property := &node.Node{Roles: []node.Role{node.RoleStatic, node.RoleConstant}}

	assert.True(t, property.HasAllRoles(node.RoleStatic, node.RoleConstant))
	assert.False(t, property.HasAllRoles(node.RoleStatic, node.RolePublic))

	var nilNode *node.Node

	assert.False(t, nilNode.HasAllRoles(node.RoleStatic))
}

func TestNode_Find_PreOrder(t *testing.T) {
	t.Parallel()

	inner := &node.Node{Type: node.UASTIdentifier, Token: "inner"}
	outer := &node.Node{Type: node.UASTIdentifier, Token: "outer", Children: []*node.Node{inner}}
	root := &node.Node{Type: node.UASTFile, Children: []*node.Node{outer}}

	found := root.Find(func(n *node.Node) bool {
		return n.Type == node.UASTIdentifier
	})

	require.Len(t, found, 2)
	assert.Same(t, outer, found[0])
	assert.Same(t, inner, found[1])
}

func TestNode_Find_NilReceiver(t *testing.T) {
	t.Parallel()

	var nilNode *node.Node

	assert.Nil(t, nilNode.Find(func(*node.Node) bool { return true }))
}

func TestNode_String(t *testing.T) {
	t.Parallel()

	class := &node.Node{
		Type:     node.UASTClass,
		Props:    map[string]string{node.PropName: "LoginPage"},
		Children: []*node.Node{{Type: node.UASTProperty}},
	}

	assert.Equal(t, "Node{Type:Class,Name:LoginPage,Children:1}", class.String())

	var nilNode *node.Node

	assert.Equal(t, "nil", nilNode.String())
}

func TestName_PropsWinOverToken(t *testing.T) {
	t.Parallel()

	named := &node.Node{
		Token: "tokenName",
		Props: map[string]string{node.PropName: "propName"},
	}

	name, ok := node.Name(named)
	require.True(t, ok)
	assert.Equal(t, "propName", name)
}

func TestName_FallsBackToToken(t *testing.T) {
	t.Parallel()

	name, ok := node.Name(&node.Node{Token: "tokenName"})
	require.True(t, ok)
	assert.Equal(t, "tokenName", name)
}

func TestName_FallsBackToNameRoleChild(t *testing.T) {
	t.Parallel()

	class := &node.Node{
		Type: node.UASTClass,
		Children: []*node.Node{
			{Type: node.UASTIdentifier, Token: "LoginPage", Roles: []node.Role{node.RoleName}},
		},
	}

	name, ok := node.Name(class)
	require.True(t, ok)
	assert.Equal(t, "LoginPage", name)
}

func TestName_Unnamed(t *testing.T) {
	t.Parallel()

	_, ok := node.Name(&node.Node{Type: node.UASTBlock})
	assert.False(t, ok)

	_, ok = node.Name(nil)
	assert.False(t, ok)
}

func TestCallee_SkipsArguments(t *testing.T) {
	t.Parallel()

	target := &node.Node{Type: node.UASTIdentifier, Token: "before"}
	call := &node.Node{Type: node.UASTCall, Children: []*node.Node{
		{Type: node.UASTLiteral, Token: "1", Roles: []node.Role{node.RoleArgument}},
		target,
	}}

	callee, ok := node.Callee(call)
	require.True(t, ok)
	assert.Same(t, target, callee)
}

func TestCallee_RejectsNonCallNodes(t *testing.T) {
	t.Parallel()

	_, ok := node.Callee(&node.Node{Type: node.UASTClass})
	assert.False(t, ok)

	_, ok = node.Callee(&node.Node{Type: node.UASTCall})
	assert.False(t, ok)
}

func TestArguments_SourceOrder(t *testing.T) {
	t.Parallel()

	first := &node.Node{Type: node.UASTLiteral, Token: "a", Roles: []node.Role{node.RoleArgument}}
	second := &node.Node{Type: node.UASTLambda, Roles: []node.Role{node.RoleArgument}}
	call := &node.Node{Type: node.UASTCall, Children: []*node.Node{
		{Type: node.UASTIdentifier, Token: "before"},
		first,
		second,
	}}

	args := node.Arguments(call)

	require.Len(t, args, 2)
	assert.Same(t, first, args[0])
	assert.Same(t, second, args[1])
}

func TestReceiver(t *testing.T) {
	t.Parallel()

	object := &node.Node{Type: node.UASTIdentifier, Token: "cy"}
	member := &node.Node{
		Type:     node.UASTMember,
		Props:    map[string]string{node.PropName: "get"},
		Children: []*node.Node{object},
	}

	receiver, ok := node.Receiver(member)
	require.True(t, ok)
	assert.Same(t, object, receiver)

	_, ok = node.Receiver(&node.Node{Type: node.UASTMember})
	assert.False(t, ok)

	_, ok = node.Receiver(&node.Node{Type: node.UASTIdentifier})
	assert.False(t, ok)
}

func TestIsAbstract(t *testing.T) {
	t.Parallel()

	assert.True(t, node.IsAbstract(&node.Node{Props: map[string]string{node.PropAbstract: "true"}}))
	assert.False(t, node.IsAbstract(&node.Node{}))
	assert.False(t, node.IsAbstract(nil))
}

func TestVisibility(t *testing.T) {
	t.Parallel()

	visibility, ok := node.Visibility(&node.Node{Props: map[string]string{node.PropVisibility: "public"}})
	require.True(t, ok)
	assert.Equal(t, "public", visibility)

	_, ok = node.Visibility(&node.Node{})
	assert.False(t, ok)
}

func TestIsFunctionValue(t *testing.T) {
	t.Parallel()

	assert.True(t, node.IsFunctionValue(&node.Node{Type: node.UASTLambda}))
	assert.True(t, node.IsFunctionValue(&node.Node{Type: node.UASTFunction}))
	assert.False(t, node.IsFunctionValue(&node.Node{Type: node.UASTIdentifier, Token: "setupFn"}))
}
