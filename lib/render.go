package lib

// Render writes a tree back out as formula text that parses to the same
// tree. Parentheses are only added where re-parsing would otherwise
// associate differently: a left child that binds looser than its parent,
// or a right child that binds looser or equally (the grammar folds left,
// so a right-nested child of equal precedence needs the parentheses to
// survive a round trip).
func Render(node Node) string {
	switch n := node.(type) {
	case Literal:
		return n.Value
	case Variable:
		return n.Name
	case BinaryOp:
		return renderChild(n.Left, n.Op, false) + " " + n.Op.String() + " " + renderChild(n.Right, n.Op, true)
	}
	return ""
}

func renderChild(child Node, parentOp opType, isRight bool) string {
	text := Render(child)

	childBinary, ok := child.(BinaryOp)
	if !ok {
		return text
	}

	childPrec := getPrecedence(childBinary.Op)
	parentPrec := getPrecedence(parentOp)
	if childPrec < parentPrec || (isRight && childPrec == parentPrec) {
		return "(" + text + ")"
	}
	return text
}
