package lib

import (
	"encoding/json"
	"fmt"
)

// nodeJSON is the persisted shape of a tree node:
//   { "type": "operator"|"number"|"input", "value": "...", "children": [left, right] }
// The persistence layer stores these alongside the rest of the calculator
// record; only the shape is defined here.
type nodeJSON struct {
	Type     string      `json:"type"`
	Value    string      `json:"value"`
	Children []*nodeJSON `json:"children,omitempty"`
}

const (
	nodeTypeOperator = "operator"
	nodeTypeNumber   = "number"
	nodeTypeInput    = "input"
)

func MarshalNode(node Node) ([]byte, error) {
	vm, err := toNodeJSON(node)
	if err != nil {
		return nil, err
	}
	return json.Marshal(vm)
}

func UnmarshalNode(data []byte) (Node, error) {
	var vm nodeJSON
	if err := json.Unmarshal(data, &vm); err != nil {
		return nil, err
	}
	return fromNodeJSON(&vm)
}

func toNodeJSON(node Node) (*nodeJSON, error) {
	switch n := node.(type) {
	case Literal:
		return &nodeJSON{Type: nodeTypeNumber, Value: n.Value}, nil
	case Variable:
		// labels are cosmetic and re-attached from the declared inputs
		// after loading, so only the name is persisted
		return &nodeJSON{Type: nodeTypeInput, Value: n.Name}, nil
	case BinaryOp:
		left, err := toNodeJSON(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := toNodeJSON(n.Right)
		if err != nil {
			return nil, err
		}
		return &nodeJSON{
			Type:     nodeTypeOperator,
			Value:    n.Op.String(),
			Children: []*nodeJSON{left, right},
		}, nil
	}
	return nil, fmt.Errorf("Cannot marshal node %v", node)
}

func fromNodeJSON(vm *nodeJSON) (Node, error) {
	if vm == nil {
		return nil, fmt.Errorf("Missing node")
	}

	switch vm.Type {
	case nodeTypeNumber:
		if !numberPattern.MatchString(vm.Value) {
			return nil, fmt.Errorf("Invalid number literal '%s'", vm.Value)
		}
		return Literal{Value: vm.Value}, nil

	case nodeTypeInput:
		if vm.Value == "" {
			return nil, fmt.Errorf("Input node with empty name")
		}
		return Variable{Name: vm.Value}, nil

	case nodeTypeOperator:
		op, ok := opFromString(vm.Value)
		if !ok {
			return nil, fmt.Errorf("Unknown operator '%s'", vm.Value)
		}
		if len(vm.Children) != 2 {
			return nil, fmt.Errorf("Operator '%s' needs exactly 2 children but has %d", vm.Value, len(vm.Children))
		}
		left, err := fromNodeJSON(vm.Children[0])
		if err != nil {
			return nil, err
		}
		right, err := fromNodeJSON(vm.Children[1])
		if err != nil {
			return nil, err
		}
		return BinaryOp{Op: op, Left: left, Right: right}, nil

	default:
		return nil, fmt.Errorf("Unknown node type '%s'", vm.Type)
	}
}
