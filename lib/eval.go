package lib

import (
	"errors"
	"fmt"
	"strconv"
)

// UnboundVariableError means evaluation hit a variable that has no value
// in the supplied bindings.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("No value bound for variable '%s'", e.Name)
}

// DivisionByZeroError means the right operand of a division evaluated to
// exactly zero. Evaluation refuses to produce Inf or NaN.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "Division by zero"
}

// Evaluate walks the tree and computes its value against the given
// variable bindings. It is a pure function of its arguments.
func Evaluate(node Node, bindings map[string]float64) (float64, error) {
	if node == nil {
		return 0, errors.New("No formula")
	}

	switch n := node.(type) {
	case Literal:
		return strconv.ParseFloat(n.Value, 64)

	case Variable:
		value, ok := bindings[n.Name]
		if !ok {
			return 0, &UnboundVariableError{Name: n.Name}
		}
		return value, nil

	case BinaryOp:
		left, err := Evaluate(n.Left, bindings)
		if err != nil {
			return 0, err
		}
		right, err := Evaluate(n.Right, bindings)
		if err != nil {
			return 0, err
		}

		switch n.Op {
		case OpAdd:
			return left + right, nil
		case OpSubtract:
			return left - right, nil
		case OpMultiply:
			return left * right, nil
		case OpDivide:
			if right == 0 {
				return 0, &DivisionByZeroError{}
			}
			return left / right, nil
		}
	}

	return 0, fmt.Errorf("Cannot evaluate node %v", node)
}
