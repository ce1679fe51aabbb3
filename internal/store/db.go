package store

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"go-process-dashboard/internal/dataset"
)

var db *sql.DB

// InitDB opens the sqlite database and creates the load-audit tables.
// Only reload history lives here; the dataset itself is never persisted.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	loadTable := `
	CREATE TABLE IF NOT EXISTS loads (
		id TEXT PRIMARY KEY,
		excel_path TEXT,
		sheet_name TEXT,
		status TEXT,
		record_count INTEGER,
		skipped_rows INTEGER,
		degraded_cells INTEGER,
		duration_ms INTEGER,
		created_at DATETIME,
		completed_at DATETIME
	);
	`
	errorTable := `
	CREATE TABLE IF NOT EXISTS load_errors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		load_id TEXT,
		error_message TEXT,
		created_at DATETIME
	);
	`

	if _, err := db.Exec(loadTable); err != nil {
		return err
	}
	if _, err := db.Exec(errorTable); err != nil {
		return err
	}
	return nil
}

// SaveLoad records the start of a load attempt.
func SaveLoad(loadID, excelPath, sheetName string) error {
	now := time.Now().UTC()
	_, err := db.Exec(`INSERT INTO loads (id, excel_path, sheet_name, status, created_at) VALUES (?, ?, ?, ?, ?)`,
		loadID, excelPath, sheetName, "running", now)
	return err
}

// CompleteLoad marks a load successful and stores its stats.
func CompleteLoad(loadID string, stats dataset.LoadStats) error {
	now := time.Now().UTC()
	_, err := db.Exec(`UPDATE loads SET status = ?, record_count = ?, skipped_rows = ?, degraded_cells = ?, duration_ms = ?, completed_at = ? WHERE id = ?`,
		"completed", stats.Rows, stats.SkippedRows, stats.DegradedCells, stats.Duration.Milliseconds(), now, loadID)
	return err
}

// FailLoad marks a load failed and records the error.
func FailLoad(loadID string, loadErr error) error {
	now := time.Now().UTC()
	if _, err := db.Exec(`UPDATE loads SET status = ?, completed_at = ? WHERE id = ?`, "failed", now, loadID); err != nil {
		return err
	}
	if loadErr == nil {
		return nil
	}
	_, err := db.Exec(`INSERT INTO load_errors (load_id, error_message, created_at) VALUES (?, ?, ?)`,
		loadID, loadErr.Error(), now)
	return err
}

// ListLoads returns load history, newest first.
func ListLoads() ([]map[string]interface{}, error) {
	rows, err := db.Query(`SELECT id, excel_path, sheet_name, status, IFNULL(record_count, 0), IFNULL(degraded_cells, 0), created_at FROM loads ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loads []map[string]interface{}
	for rows.Next() {
		var id, excelPath, sheetName, status string
		var recordCount, degradedCells int
		var createdAt time.Time
		if err := rows.Scan(&id, &excelPath, &sheetName, &status, &recordCount, &degradedCells, &createdAt); err != nil {
			return nil, err
		}
		loads = append(loads, map[string]interface{}{
			"id":            id,
			"excelPath":     excelPath,
			"sheetName":     sheetName,
			"status":        status,
			"recordCount":   recordCount,
			"degradedCells": degradedCells,
			"createdAt":     createdAt,
		})
	}
	return loads, rows.Err()
}

// GetLoadErrors returns the errors recorded for one load.
func GetLoadErrors(loadID string) ([]string, error) {
	rows, err := db.Query(`SELECT error_message FROM load_errors WHERE load_id = ? ORDER BY created_at`, loadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []string
	for rows.Next() {
		var msg string
		if err := rows.Scan(&msg); err != nil {
			return nil, err
		}
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
