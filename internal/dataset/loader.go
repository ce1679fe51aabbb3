package dataset

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"go-process-dashboard/internal/model"
)

// LoadStats summarizes one load for logging and the audit store.
type LoadStats struct {
	Rows          int           `json:"rows"`
	SkippedRows   int           `json:"skipped_rows"`
	DegradedCells int           `json:"degraded_cells"`
	Duration      time.Duration `json:"-"`
}

// Load reads the spreadsheet at path, selects the named sheet and normalizes
// every row into the canonical dataset. Blank rows are skipped; cells that
// fail coercion degrade to their zero value and are only counted. The errors
// returned here are the fatal class: missing file, missing sheet, or a
// required column absent from the header row.
func Load(path, sheetName string) (model.Dataset, LoadStats, error) {
	start := time.Now()
	var stats LoadStats

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, stats, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, stats, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, sheetName, path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, stats, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, stats, fmt.Errorf("%w: sheet %q has no header row", ErrMissingColumn, sheetName)
	}

	cols, err := ResolveColumns(rows[0])
	if err != nil {
		return nil, stats, err
	}

	ds := make(model.Dataset, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			stats.SkippedRows++
			continue
		}
		rec, degraded := cols.NormalizeRow(row)
		stats.DegradedCells += degraded
		ds = append(ds, rec)
	}

	stats.Rows = len(ds)
	stats.Duration = time.Since(start)
	log.Printf("📄 Loaded %d records from %q (%d blank rows skipped, %d degraded cells) in %v",
		stats.Rows, sheetName, stats.SkippedRows, stats.DegradedCells, stats.Duration)
	return ds, stats, nil
}
