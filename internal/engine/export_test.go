package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"go-process-dashboard/internal/model"
)

func TestTableShape(t *testing.T) {
	commitment := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	ds := model.Dataset{
		{ProcessID: "P-1", Secretariat: "Saúde", Agency: "Alfa", Campaign: "Vacinação", Value: 1234.5, Competency: model.Competency{Month: 1, Year: 2024}, CommitmentDate: &commitment, Link: "https://example.org/p1"},
	}

	header, rows := Table(ds)
	assert.Len(t, header, 9)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Vacinação", "Saúde", "Alfa", "1234.50", "2024-01", "10/01/2024", "P-1", "https://example.org/p1", ""}, rows[0])
}

func TestTableEmptySubset(t *testing.T) {
	header, rows := Table(model.Dataset{})
	assert.Len(t, header, 9)
	assert.Empty(t, rows)
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	commitment := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	ds := model.Dataset{
		{ProcessID: "P-1", Secretariat: "Saúde", Agency: "Alfa", Campaign: "Vacinação", Value: 1000, Competency: model.Competency{Month: 1, Year: 2024}, CommitmentDate: &commitment},
		{ProcessID: "P-2", Secretariat: "Educação", Agency: "Beta", Campaign: "Matrícula", Value: 250.75},
	}

	buf, err := WriteXLSX(ds)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "CAMPANHA", rows[0][0])
	assert.Equal(t, "Vacinação", rows[1][0])
	assert.Equal(t, "P-2", rows[2][6])
}

func TestWriteXLSXEmptySubset(t *testing.T) {
	buf, err := WriteXLSX(model.Dataset{})
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1, "header row only")
}
