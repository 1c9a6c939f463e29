package node

// Structural accessors for the shapes the lint rules inspect. Each accessor
// reports ok=false when the node does not carry the expected shape so callers
// can surface a malformed-tree error instead of panicking.

// Name extracts an entity name (class, property, method, member access).
// It tries Props["name"], then the token, then the first child carrying
// RoleName.
func Name(targetNode *Node) (string, bool) {
	if targetNode == nil {
		return "", false
	}

	if name, ok := targetNode.Props[PropName]; ok && name != "" {
		return name, true
	}

	if targetNode.Token != "" {
		return targetNode.Token, true
	}

	for _, child := range targetNode.Children {
		if child.HasAnyRole(RoleName) && child.Token != "" {
			return child.Token, true
		}
	}

	return "", false
}

// Callee returns the callee expression of a Call or New node: the first
// child that is not an argument.
func Callee(call *Node) (*Node, bool) {
	if call == nil || !call.HasAnyType(UASTCall, UASTNew) {
		return nil, false
	}

	for _, child := range call.Children {
		if child.HasAnyRole(RoleArgument) {
			continue
		}

		return child, true
	}

	return nil, false
}

// Arguments returns the argument expressions of a Call or New node in
// source order.
func Arguments(call *Node) []*Node {
	if call == nil {
		return nil
	}

	var args []*Node

	for _, child := range call.Children {
		if child.HasAnyRole(RoleArgument) {
			args = append(args, child)
		}
	}

	return args
}

// Receiver returns the receiver expression of a Member node (the object in
// `object.property`).
func Receiver(member *Node) (*Node, bool) {
	if member == nil || member.Type != UASTMember || len(member.Children) == 0 {
		return nil, false
	}

	return member.Children[0], true
}

// IsAbstract reports whether a class declaration carries the abstract
// modifier.
func IsAbstract(class *Node) bool {
	return class != nil && class.Props[PropAbstract] == "true"
}

// Visibility returns the accessibility modifier of a class member.
// Members without an explicit modifier report ok=false.
func Visibility(member *Node) (string, bool) {
	if member == nil {
		return "", false
	}

	visibility, ok := member.Props[PropVisibility]

	return visibility, ok
}

// IsFunctionValue reports whether an expression node is an inline function
// value (traditional or lambda-style closure). Identifiers referencing a
// pre-bound function deliberately do not count.
func IsFunctionValue(expr *Node) bool {
	return expr.HasAnyType(UASTFunction, UASTLambda)
}
