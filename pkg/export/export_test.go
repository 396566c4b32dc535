package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"Entity", "Question", "Status"},
		Rows: []map[string]string{
			{"Entity": "FIN", "Question": "Describe the close process", "Status": "completed"},
			{"Entity": "HR", "Question": "Headcount by department", "Status": "pending"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	content, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Entity,Question,Status", lines[0])
	assert.Contains(t, lines[1], "FIN")
	assert.Contains(t, lines[2], "pending")
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestPDFExporterRender(t *testing.T) {
	content, err := NewPDFExporter().Render(sampleDataset(), "Finance Deep Dive")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "%PDF"))
}

func TestPDFExporterRequiresHeaders(t *testing.T) {
	_, err := NewPDFExporter().Render(Dataset{}, "")
	assert.Error(t, err)
}
