package main

import (
	"fmt"
	"os"

	"github.com/graeme-hill/calcstuff-go/lib"
)

func main() {
	dir := "./test/definitions"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	defs, err := lib.ReadDefinitionsFromDir(dir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, def := range defs {
		if def.Tree == nil {
			fmt.Printf("%s: (no formula)\n", def.Name)
			continue
		}
		fmt.Printf("%s: %s\n", def.Name, lib.Render(def.Tree))
		for _, name := range lib.UndeclaredVariables(def.Tree, def.Inputs) {
			fmt.Printf("  undeclared variable: %s\n", name)
		}
	}
}
