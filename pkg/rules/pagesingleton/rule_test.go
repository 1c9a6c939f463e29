package pagesingleton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/testlint/pkg/lint"
	"github.com/Sumatoshi-tech/testlint/pkg/rules/pagesingleton"
	"github.com/Sumatoshi-tech/testlint/pkg/uast/node"
)

func classNode(name string, members ...*node.Node) *node.Node {
	class := &node.Node{
		Type:     node.UASTClass,
		Roles:    []node.Role{node.RoleDeclaration},
		Props:    map[string]string{node.PropName: name},
		Children: members,
	}

	return class
}

func abstractClassNode(name string, members ...*node.Node) *node.Node {
	class := classNode(name, members...)
	class.Props[node.PropAbstract] = "true"

	return class
}

func constructorNode(paramCount int) *node.Node {
	ctor := &node.Node{
		Type:  node.UASTMethod,
		Props: map[string]string{node.PropName: "constructor"},
	}

	for range paramCount {
		ctor.AddChild(&node.Node{Type: node.UASTParameter})
	}

	return ctor
}

func newExpr(className string, argCount int) *node.Node {
	expr := &node.Node{Type: node.UASTNew}
	expr.AddChild(&node.Node{Type: node.UASTIdentifier, Token: className})

	for range argCount {
		expr.AddChild(&node.Node{
			Type:  node.UASTLiteral,
			Token: "1",
			Roles: []node.Role{node.RoleArgument},
		})
	}

	return expr
}

type fieldSpec struct {
	name       string
	visibility string
	static     bool
	readonly   bool
	init       *node.Node
}

func fieldNode(spec fieldSpec) *node.Node {
	property := &node.Node{
		Type:  node.UASTProperty,
		Props: map[string]string{node.PropName: spec.name},
	}

	if spec.visibility != "" {
		property.Props[node.PropVisibility] = spec.visibility
	}

	if spec.static {
		property.Roles = append(property.Roles, node.RoleStatic)
	}

	if spec.readonly {
		property.Roles = append(property.Roles, node.RoleConstant)
	}

	if spec.init != nil {
		property.AddChild(spec.init)
	}

	return property
}

func goodSingletonField(className string) *node.Node {
	return fieldNode(fieldSpec{
		name:       "INSTANCE",
		visibility: "public",
		static:     true,
		readonly:   true,
		init:       newExpr(className, 0),
	})
}

func runRule(t *testing.T, root *node.Node) []lint.Diagnostic {
	t.Helper()

	visitor := pagesingleton.New().NewVisitor()
	traverser := lint.NewTraverser()
	traverser.RegisterVisitor(visitor)
	traverser.Traverse(root)

	return visitor.Diagnostics()
}

func fileWith(children ...*node.Node) *node.Node {
	return &node.Node{Type: node.UASTFile, Children: children}
}

func TestPageSingleton_CompliantClass_NoDiagnostics(t *testing.T) {
	t.Parallel()

	class := classNode("LoginPage", goodSingletonField("LoginPage"))

	diagnostics := runRule(t, fileWith(class))

	assert.Empty(t, diagnostics)
}

func TestPageSingleton_MissingField_OneDiagnostic(t *testing.T) {
	t.Parallel()

	class := classNode("LoginPage")

	diagnostics := runRule(t, fileWith(class))

	require.Len(t, diagnostics, 1)
	assert.Equal(t, lint.KindMissingSingleton, diagnostics[0].Kind)
	assert.Equal(t,
		"Class 'LoginPage' must declare: public static readonly INSTANCE = new LoginPage();",
		diagnostics[0].Message)
	assert.Same(t, class, diagnostics[0].Node)
}

func TestPageSingleton_NonPageClass_Ignored(t *testing.T) {
	t.Parallel()

	diagnostics := runRule(t, fileWith(classNode("LoginHelper")))

	assert.Empty(t, diagnostics)
}

func TestPageSingleton_AbstractClass_Ignored(t *testing.T) {
	t.Parallel()

	diagnostics := runRule(t, fileWith(abstractClassNode("BasePage")))

	assert.Empty(t, diagnostics)
}

func TestPageSingleton_ParameterizedConstructor_Ignored(t *testing.T) {
	t.Parallel()

	class := classNode("LoginPage", constructorNode(2))

	diagnostics := runRule(t, fileWith(class))

	assert.Empty(t, diagnostics)
}

func TestPageSingleton_EmptyConstructor_StillChecked(t *testing.T) {
	t.Parallel()

	class := classNode("LoginPage", constructorNode(0))

	diagnostics := runRule(t, fileWith(class))

	require.Len(t, diagnostics, 1)
	assert.Equal(t, lint.KindMissingSingleton, diagnostics[0].Kind)
}

func TestPageSingleton_NonReadonlyField_Violation(t *testing.T) {
	t.Parallel()

	field := fieldNode(fieldSpec{
		name:       "INSTANCE",
		visibility: "public",
		static:     true,
		readonly:   false,
		init:       newExpr("LoginPage", 0),
	})

	diagnostics := runRule(t, fileWith(classNode("LoginPage", field)))

	require.Len(t, diagnostics, 1)
}

func TestPageSingleton_PrivateField_Violation(t *testing.T) {
	t.Parallel()

	field := fieldNode(fieldSpec{
		name:       "INSTANCE",
		visibility: "private",
		static:     true,
		readonly:   true,
		init:       newExpr("LoginPage", 0),
	})

	diagnostics := runRule(t, fileWith(classNode("LoginPage", field)))

	require.Len(t, diagnostics, 1)
}

func TestPageSingleton_WrongClassConstructed_Violation(t *testing.T) {
	t.Parallel()

	field := fieldNode(fieldSpec{
		name:       "INSTANCE",
		visibility: "public",
		static:     true,
		readonly:   true,
		init:       newExpr("OtherPage", 0),
	})

	diagnostics := runRule(t, fileWith(classNode("LoginPage", field)))

	require.Len(t, diagnostics, 1)
}

func TestPageSingleton_ConstructorArguments_Violation(t *testing.T) {
	t.Parallel()

	field := fieldNode(fieldSpec{
		name:       "INSTANCE",
		visibility: "public",
		static:     true,
		readonly:   true,
		init:       newExpr("LoginPage", 1),
	})

	diagnostics := runRule(t, fileWith(classNode("LoginPage", field)))

	require.Len(t, diagnostics, 1)
}

func TestPageSingleton_ManyNearMatches_SingleDiagnostic(t *testing.T) {
	t.Parallel()

	class := classNode("LoginPage",
		fieldNode(fieldSpec{name: "INSTANCE", static: true}),
		fieldNode(fieldSpec{name: "INSTANCE", visibility: "public", readonly: true}),
	)

	diagnostics := runRule(t, fileWith(class))

	require.Len(t, diagnostics, 1)
}

func TestPageSingleton_MultipleClasses_OneDiagnosticEach(t *testing.T) {
	t.Parallel()

	root := fileWith(
		classNode("LoginPage"),
		classNode("HomePage", goodSingletonField("HomePage")),
		classNode("CartPage"),
	)

	diagnostics := runRule(t, root)

	require.Len(t, diagnostics, 2)
	assert.Contains(t, diagnostics[0].Message, "LoginPage")
	assert.Contains(t, diagnostics[1].Message, "CartPage")
}

func TestPageSingleton_CustomOptions(t *testing.T) {
	t.Parallel()

	rule, err := pagesingleton.NewWithOptions(pagesingleton.Options{
		Suffix:    "Screen",
		FieldName: "SHARED",
	})
	require.NoError(t, err)

	class := classNode("LoginScreen")

	visitor := rule.NewVisitor()
	traverser := lint.NewTraverser()
	traverser.RegisterVisitor(visitor)
	traverser.Traverse(fileWith(class))

	diagnostics := visitor.Diagnostics()
	require.Len(t, diagnostics, 1)
	assert.Contains(t, diagnostics[0].Message, "SHARED")
}

func TestPageSingleton_EmptyOptions_Rejected(t *testing.T) {
	t.Parallel()

	_, err := pagesingleton.NewWithOptions(pagesingleton.Options{})

	require.ErrorIs(t, err, pagesingleton.ErrInvalidOptions)
}
