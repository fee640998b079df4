package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Rank", "Name", "Average"},
		Rows: []map[string]string{
			Row("Rank", "1", "Name", "Bilal", "Average", "91.5%"),
			Row("Rank", "2", "Name", "Amina", "Average", "88.0%"),
		},
	}
}

func TestCSVExporterRendersHeaderAndRowsInOrder(t *testing.T) {
	raw, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Equal(t, []string{
		"Rank,Name,Average",
		"1,Bilal,91.5%",
		"2,Amina,88.0%",
	}, lines)
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	require.Error(t, err)
}

func TestCSVExporterFillsMissingCellsBlank(t *testing.T) {
	data := Dataset{
		Headers: []string{"A", "B"},
		Rows:    []map[string]string{Row("A", "only")},
	}
	raw, err := NewCSVExporter().Render(data)
	require.NoError(t, err)
	require.Contains(t, string(raw), "only,\n")
}

func TestPDFExporterProducesDocument(t *testing.T) {
	raw, err := NewPDFExporter().Render(sampleDataset(), "Class Leaderboard")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "%PDF"))
	require.NotEmpty(t, raw)
}

func TestRowBuilderIgnoresDanglingKey(t *testing.T) {
	row := Row("A", "1", "B")
	require.Equal(t, map[string]string{"A": "1"}, row)
}
