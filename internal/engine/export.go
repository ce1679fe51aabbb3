package engine

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"go-process-dashboard/internal/model"
)

// ExportSheetName is the sheet the filtered subset is written to.
const ExportSheetName = "Dados"

// exportHeader keeps the source spreadsheet's column names so an exported
// file round-trips through the loader.
var exportHeader = []string{
	"CAMPANHA", "SECRETARIA", "AGÊNCIA", "VALOR DO ESPELHO",
	"COMPETÊNCIA", "DATA DO EMPENHO", "PROCESSO", "LINK", "OBSERVAÇÃO",
}

// Table flattens the subset into a header plus string rows, the shape the
// export and table consumers want. Values are rendered faithfully: dates as
// DD/MM/YYYY, competency as YYYY-MM, value with two decimals.
func Table(subset model.Dataset) ([]string, [][]string) {
	rows := make([][]string, 0, len(subset))
	for _, rec := range subset {
		date := ""
		if rec.CommitmentDate != nil {
			date = rec.CommitmentDate.Format("02/01/2006")
		}
		rows = append(rows, []string{
			rec.Campaign,
			rec.Secretariat,
			rec.Agency,
			fmt.Sprintf("%.2f", rec.Value),
			rec.Competency.String(),
			date,
			rec.ProcessID,
			rec.Link,
			rec.Observation,
		})
	}
	return exportHeader, rows
}

// WriteXLSX serializes the subset into a single-sheet workbook and returns
// the file bytes. The value column is written as a number so spreadsheet
// consumers can keep aggregating it.
func WriteXLSX(subset model.Dataset) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename export sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(ExportSheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream writer: %w", err)
	}

	header := make([]interface{}, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range subset {
		date := ""
		if rec.CommitmentDate != nil {
			date = rec.CommitmentDate.Format("02/01/2006")
		}
		row := []interface{}{
			rec.Campaign,
			rec.Secretariat,
			rec.Agency,
			rec.Value,
			rec.Competency.String(),
			date,
			rec.ProcessID,
			rec.Link,
			rec.Observation,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := sw.SetRow(cell, row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush export: %w", err)
	}
	return f.WriteToBuffer()
}
