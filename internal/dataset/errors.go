package dataset

import "errors"

// Load-time failure classes. File and configuration errors are fatal for the
// load that raised them; per-cell parse failures never surface as errors and
// instead degrade the cell to its zero value (counted in LoadStats).
var (
	// ErrFileNotFound: the spreadsheet path does not exist.
	ErrFileNotFound = errors.New("spreadsheet file not found")

	// ErrSheetNotFound: the workbook has no sheet with the configured name.
	ErrSheetNotFound = errors.New("sheet not found in workbook")

	// ErrMissingColumn: no header matched a required canonical field.
	ErrMissingColumn = errors.New("required column not found")
)
