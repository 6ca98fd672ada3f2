package lib

import (
	"fmt"
	"io/ioutil"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Input is one declared input variable on a calculator. The name is the
// binding key used by formulas; the label is display text.
type Input struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label"`
}

// Definition is one calculator: its declared inputs, the formula text the
// admin typed, and the parsed tree. Tree is nil when no formula has been
// entered yet.
type Definition struct {
	Name    string
	Formula string
	Inputs  []Input
	Tree    Node
}

type definitionFile struct {
	Name    string  `yaml:"name"`
	Formula string  `yaml:"formula"`
	Inputs  []Input `yaml:"inputs"`
}

func ReadDefinitionsFromDir(dir string) ([]Definition, error) {
	files, err := ioutil.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	defs := []Definition{}

	for _, file := range files {
		filePath := path.Join(dir, file.Name())
		def, err := ReadDefinitionFromFile(filePath)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	return defs, nil
}

func ReadDefinitionFromFile(filePath string) (Definition, error) {
	bytes, err := ioutil.ReadFile(filePath)
	if err != nil {
		return Definition{}, err
	}

	var df definitionFile
	if err := yaml.Unmarshal(bytes, &df); err != nil {
		return Definition{}, err
	}

	def := Definition{
		Name:    df.Name,
		Formula: df.Formula,
		Inputs:  df.Inputs,
	}
	if def.Name == "" {
		def.Name = definitionNameFromPath(filePath)
	}

	// A missing formula is fine (Tree stays nil) but a formula that fails
	// to parse is an error, never silently treated as "no formula".
	tree, err := Parse(def.Formula)
	if err != nil {
		return Definition{}, fmt.Errorf("Invalid formula in %s: %v", filePath, err)
	}
	def.Tree = AttachLabels(tree, def.Inputs)

	return def, nil
}

func definitionNameFromPath(filePath string) string {
	_, fileName := path.Split(filePath)
	parts := strings.Split(fileName, ".")
	return parts[0]
}

// AttachLabels returns a new tree with labels from the declared inputs
// copied onto matching variables. The argument tree is never modified;
// labels have no effect on evaluation or rendering.
func AttachLabels(node Node, inputs []Input) Node {
	switch n := node.(type) {
	case Variable:
		for _, input := range inputs {
			if input.Name == n.Name {
				return Variable{Name: n.Name, Label: input.Label}
			}
		}
		return n
	case BinaryOp:
		return BinaryOp{
			Op:    n.Op,
			Left:  AttachLabels(n.Left, inputs),
			Right: AttachLabels(n.Right, inputs),
		}
	}
	return node
}

// UndeclaredVariables lists names the tree references but the calculator
// does not declare, in order of first appearance. Referencing an
// undeclared variable is not a parse error, but the admin UI wants to
// warn about it before the formula is saved.
func UndeclaredVariables(node Node, inputs []Input) []string {
	declared := map[string]bool{}
	for _, input := range inputs {
		declared[input.Name] = true
	}

	seen := map[string]bool{}
	result := []string{}

	var walk func(Node)
	walk = func(n Node) {
		switch x := n.(type) {
		case Variable:
			if !declared[x.Name] && !seen[x.Name] {
				seen[x.Name] = true
				result = append(result, x.Name)
			}
		case BinaryOp:
			walk(x.Left)
			walk(x.Right)
		}
	}

	if node != nil {
		walk(node)
	}
	return result
}
