package dataset

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const testSheet = "CONTROLE DE PROCESSOS - GERAL"

// writeWorkbook builds a spreadsheet fixture with a header row and the given
// data rows.
func writeWorkbook(t *testing.T, path, sheet string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))

	header := []interface{}{"PROCESSO", "SECRETARIA", "AGÊNCIA", "CAMPANHA", "VALOR DO ESPELHO", "DATA DO EMPENHO", "COMPETÊNCIA", "OBSERVAÇÃO", "LINK"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadReadsAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controle.xlsx")
	writeWorkbook(t, path, testSheet, [][]interface{}{
		{"P-1", "Saúde", "Alfa", "Vacinação", "R$ 1.000,00", "10/01/2024", "01/2024", "ok", "https://example.org/p1"},
		{"P-2", "Educação", "Beta", "Matrícula", "R$ 2.500,50", "20/02/2024", "02/2024", "", ""},
	})

	ds, stats, err := Load(path, testSheet)
	require.NoError(t, err)
	require.Len(t, ds, 2)
	assert.Equal(t, 2, stats.Rows)
	assert.Equal(t, 0, stats.DegradedCells)

	assert.Equal(t, "Saúde", ds[0].Secretariat)
	assert.Equal(t, 1000.0, ds[0].Value)
	assert.Equal(t, "https://example.org/p1", ds[0].Link)
	require.NotNil(t, ds[1].CommitmentDate)
	assert.Equal(t, 2, ds[1].Competency.Month)
}

func TestLoadSkipsBlankRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controle.xlsx")
	writeWorkbook(t, path, testSheet, [][]interface{}{
		{"P-1", "Saúde", "Alfa", "Vacinação", "100", "", "01/2024", "", ""},
		{"", "", "", "", "", "", "", "", ""},
		{"P-2", "Saúde", "Alfa", "Vacinação", "50", "", "02/2024", "", ""},
	})

	ds, stats, err := Load(path, testSheet)
	require.NoError(t, err)
	assert.Len(t, ds, 2)
	assert.Equal(t, 1, stats.SkippedRows)
}

func TestLoadDegradesUnparseableValueCell(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controle.xlsx")
	writeWorkbook(t, path, testSheet, [][]interface{}{
		{"P-1", "Saúde", "Alfa", "Vacinação", "R$ abc", "", "", "", ""},
	})

	ds, stats, err := Load(path, testSheet)
	require.NoError(t, err, "a bad value cell must not abort the load")
	require.Len(t, ds, 1)
	assert.Equal(t, 0.0, ds[0].Value)
	assert.Equal(t, 1, stats.DegradedCells)
}

func TestLoadFileNotFound(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), testSheet)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadSheetNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controle.xlsx")
	writeWorkbook(t, path, "Outra Aba", nil)

	_, _, err := Load(path, testSheet)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestLoadMissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controle.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetName("Sheet1", testSheet))
	header := []interface{}{"PROCESSO", "OBSERVAÇÃO"}
	require.NoError(t, f.SetSheetRow(testSheet, "A1", &header))
	require.NoError(t, f.SaveAs(path))
	f.Close()

	_, _, err := Load(path, testSheet)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestSnapshotSwapAndFailedReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "controle.xlsx")
	writeWorkbook(t, path, testSheet, [][]interface{}{
		{"P-1", "Saúde", "Alfa", "Vacinação", "100", "", "01/2024", "", ""},
	})

	snap := NewSnapshot()
	ds, stats, err := Load(path, testSheet)
	require.NoError(t, err)
	snap.Swap(ds, stats)
	require.Len(t, snap.Current(), 1)

	// A reload pointed at a missing file fails before any swap; the served
	// dataset must stay intact.
	_, _, err = Load(filepath.Join(t.TempDir(), "gone.xlsx"), testSheet)
	require.Error(t, err)
	assert.Len(t, snap.Current(), 1)
}
