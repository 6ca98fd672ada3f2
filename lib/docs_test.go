package lib

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDocsRendersCanonicalFormula(t *testing.T) {
	defs := []Definition{
		{
			Name:    "Specific material removal rate",
			Formula: "vw*ae/60",
			Inputs: []Input{
				{Name: "vw", Label: "Workpiece speed"},
				{Name: "ae", Label: "Depth of cut"},
			},
			Tree: mustParse(t, "vw*ae/60"),
		},
	}

	var buf bytes.Buffer
	err := writeDocs(&buf, defs)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "## Specific material removal rate")
	require.Contains(t, out, "`vw * ae / 60`")
	require.Contains(t, out, "| vw | Workpiece speed |")
	require.Contains(t, out, "| ae | Depth of cut |")
}

func TestWriteDocsDefinitionWithoutFormula(t *testing.T) {
	defs := []Definition{
		{Name: "Draft", Inputs: []Input{{Name: "vw", Label: "Workpiece speed"}}},
	}

	var buf bytes.Buffer
	err := writeDocs(&buf, defs)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "(none)")
}
