package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/dre/internal/model"
)

func TestMarshalUnmarshalNode(t *testing.T) {
	n := model.AccountNode{
		ID:         model.IDEBITDA,
		Name:       "EBITDA",
		Level:      1,
		Formula:    model.FormulaEBITDA,
		Expandable: false,
	}
	row := MarshalNode(n)
	assert.Equal(t, []string{"ebitda", "EBITDA", "1", "", "lucrobruto-despop", "false", "false"}, row)

	got, err := UnmarshalNode(row)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestUnmarshalNode_EmptyFlags(t *testing.T) {
	got, err := UnmarshalNode([]string{"", "Aluguel", "3", "despesas-ocupacao", "", "", ""})
	require.NoError(t, err)
	assert.Equal(t, "Aluguel", got.Key())
	assert.False(t, got.Editable)
	assert.Equal(t, model.FormulaNone, got.Formula)
}

func TestUnmarshalNode_Errors(t *testing.T) {
	tests := []struct {
		name string
		row  []string
	}{
		{"short row", []string{"a", "b"}},
		{"bad level", []string{"a", "A", "one", "", "", "", ""}},
		{"bad formula", []string{"a", "A", "1", "", "product", "", ""}},
		{"bad editable", []string{"a", "A", "1", "", "", "maybe", ""}},
		{"bad expandable", []string{"a", "A", "1", "", "", "", "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalNode(tt.row)
			assert.Error(t, err)
		})
	}
}

func TestReadNodes_RowNumberInError(t *testing.T) {
	input := "id,name,level,parent,formula,editable,expandable\n" +
		"a,A,1,,,,\n" +
		"b,B,x,,,,\n"
	_, err := ReadNodes(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 3")
}

func TestReadNodes_Empty(t *testing.T) {
	nodes, err := ReadNodes(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestDefaultChartRoundTrip(t *testing.T) {
	chart := DefaultChart()

	var buf bytes.Buffer
	require.NoError(t, WriteNodes(&buf, chart))

	got, err := ReadNodes(&buf)
	require.NoError(t, err)
	require.Len(t, got, len(chart))
	assert.Equal(t, chart, got)
}
