package lib

import (
	"io"
	"os"
	"text/template"
)

var docsTemplateString = `# Calculator reference

{{range .Definitions}}## {{.Name}}

Formula: {{if .HasFormula}}` + "`{{.Formula}}`" + `{{else}}(none){{end}}

{{if .Inputs}}| Input | Label |
| ----- | ----- |
{{range .Inputs}}| {{.Name}} | {{.Label}} |
{{end}}{{end}}
{{end}}`

type docsViewModel struct {
	Definitions []definitionViewModel
}

type definitionViewModel struct {
	Name       string
	Formula    string
	HasFormula bool
	Inputs     []Input
}

// WriteDocs renders a markdown reference for every calculator definition
// in dir. Formulas are shown in their canonical form, not as typed.
func WriteDocs(dir string, dest string) error {
	defs, err := ReadDefinitionsFromDir(dir)
	if err != nil {
		return err
	}

	fileWriter, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	return writeDocs(fileWriter, defs)
}

func writeDocs(writer io.Writer, defs []Definition) error {
	vm := docsViewModel{
		Definitions: []definitionViewModel{},
	}

	for _, def := range defs {
		vm.Definitions = append(vm.Definitions, definitionViewModel{
			Name:       def.Name,
			Formula:    Render(def.Tree),
			HasFormula: def.Tree != nil,
			Inputs:     def.Inputs,
		})
	}

	tmpl, err := template.New("docs").Parse(docsTemplateString)
	if err != nil {
		return err
	}

	return tmpl.Execute(writer, vm)
}
