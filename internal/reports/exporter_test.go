package reports

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() table {
	return table{
		Title:   "Fundraising Goals Report",
		Headers: []string{"ID", "Name", "Target", "Raised", "Status", "Start Date"},
		Widths:  []float64{15, 65, 30, 30, 25, 30},
		Rows: [][]string{
			{"1", "Clean Water", "10000.00", "4200.00", "Active", "2026-01-01"},
			{"2", "School Kits", "5000.00", "5000.00", "Completed", "2026-02-15"},
		},
	}
}

func TestExportPDF(t *testing.T) {
	data, name, mime, err := NewExporter().Export(FormatPDF, sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "fundraising_goals_report.pdf", name)
	assert.Equal(t, "application/pdf", mime)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportExcel(t *testing.T) {
	data, name, mime, err := NewExporter().Export(FormatExcel, sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "fundraising_goals_report.xlsx", name)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", mime)
	// xlsx files are zip archives.
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestExportWord(t *testing.T) {
	data, name, mime, err := NewExporter().Export(FormatWord, sampleTable())
	require.NoError(t, err)
	assert.Equal(t, "fundraising_goals_report.docx", name)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", mime)
	assert.NotEmpty(t, data)
}

func TestExportUnknownFormat(t *testing.T) {
	_, _, _, err := NewExporter().Export("csv", sampleTable())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestExportWideTableLandscape(t *testing.T) {
	wide := table{
		Title:   "Events Report",
		Headers: []string{"ID", "Name", "Location", "Status", "Attendance", "Funds Raised", "Start", "End"},
		Widths:  []float64{15, 55, 45, 25, 25, 30, 40, 40},
		Rows:    [][]string{{"1", "Food Drive", "Pune", "Completed", "120", "2500.00", "2026-01-10 09:00", "2026-01-10 18:00"}},
	}
	data, _, _, err := NewExporter().Export(FormatPDF, wide)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "donors_report.pdf", fileName("Donors Report", "pdf"))
	assert.Equal(t, "events_report_2026.xlsx", fileName("Events Report 2026!", "xlsx"))
}
