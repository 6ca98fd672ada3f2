package lib

type opType int

const (
	OpAdd opType = iota
	OpSubtract
	OpMultiply
	OpDivide
)

func (op opType) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return "?"
	}
}

func opFromString(s string) (opType, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSubtract, true
	case "*":
		return OpMultiply, true
	case "/":
		return OpDivide, true
	default:
		return 0, false
	}
}

func getPrecedence(op opType) int {
	switch op {
	case OpMultiply, OpDivide:
		return 2
	default:
		return 1
	}
}

// Node is one of exactly three shapes: Literal, Variable or BinaryOp.
// Trees are immutable value objects; edits replace the whole tree.
type Node interface {
	isNode()
}

func (l Literal) isNode()  {}
func (v Variable) isNode() {}
func (b BinaryOp) isNode() {}

// Literal is a numeric constant. The value is kept as the original text
// (matching [0-9]+(\.[0-9]+)?) so nothing is rounded before evaluation.
type Literal struct {
	Value string
}

// Variable references a declared calculator input by name. Label is the
// human-readable description and plays no part in evaluation.
type Variable struct {
	Name  string
	Label string
}

// BinaryOp applies one of + - * / to exactly two children.
type BinaryOp struct {
	Op    opType
	Left  Node
	Right Node
}
