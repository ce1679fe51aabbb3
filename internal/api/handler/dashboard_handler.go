package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"go-process-dashboard/internal/config"
	"go-process-dashboard/internal/dataset"
	"go-process-dashboard/internal/engine"
	"go-process-dashboard/internal/model"
	"go-process-dashboard/internal/store"
	"go-process-dashboard/pkg/utils"
)

// Dashboard serves the query interface over the current dataset snapshot.
type Dashboard struct {
	Snapshot *dataset.Snapshot
	Cfg      *config.Config
}

func New(snap *dataset.Snapshot, cfg *config.Config) *Dashboard {
	return &Dashboard{Snapshot: snap, Cfg: cfg}
}

// parseSelection builds a FilterSelection from query parameters. Unknown or
// malformed parameters are ignored rather than rejected: a filter request
// always produces a (possibly empty) result.
func parseSelection(r *http.Request) model.FilterSelection {
	q := r.URL.Query()
	sel := model.FilterSelection{
		Secretariat: q.Get("secretariat"),
		Agency:      q.Get("agency"),
		Campaign:    q.Get("campaign"),
		SearchText:  q.Get("q"),
	}
	if m, err := strconv.Atoi(q.Get("month")); err == nil && m >= 1 && m <= 12 {
		sel.CompetencyMonth = m
	}
	if y, err := strconv.Atoi(q.Get("year")); err == nil && y > 0 {
		sel.CompetencyYear = y
	}
	if t, err := time.Parse("2006-01-02", q.Get("from")); err == nil {
		sel.CommitmentFrom = &t
	}
	if t, err := time.Parse("2006-01-02", q.Get("to")); err == nil {
		sel.CommitmentTo = &t
	}
	return sel
}

// GetDashboard computes KPIs and chart series for the current filter selection
// @Summary Get dashboard aggregates
// @Description Apply the filter selection from query parameters and return KPIs and chart series for the matching subset
// @Tags dashboard
// @Produce json
// @Param secretariat query string false "Secretariat (exact, case-insensitive)"
// @Param agency query string false "Agency (exact, case-insensitive)"
// @Param campaign query string false "Campaign (exact, case-insensitive)"
// @Param month query int false "Competency month (1-12)"
// @Param year query int false "Competency year"
// @Param from query string false "Commitment date from (YYYY-MM-DD, inclusive)"
// @Param to query string false "Commitment date to (YYYY-MM-DD, inclusive)"
// @Param q query string false "Search over process id and observation"
// @Success 200 {object} map[string]interface{} "KPIs and series"
// @Router /dashboard [get]
func (d *Dashboard) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sel := parseSelection(r)
	subset := engine.Apply(d.Snapshot.Current(), sel)
	agg := engine.Compute(subset, d.Cfg.TopCampaigns)

	writeJSON(w, map[string]interface{}{
		"selection":         sel,
		"kpis":              agg,
		"totalValueDisplay": utils.FormatCurrency(agg.TotalValue),
	})
}

// GetRecords returns the filtered subset as display-ready table rows
// @Summary Get filtered records
// @Description Apply the filter selection and return the matching records as a flat table with formatted values and clickable links
// @Tags dashboard
// @Produce json
// @Param secretariat query string false "Secretariat (exact, case-insensitive)"
// @Param agency query string false "Agency (exact, case-insensitive)"
// @Param campaign query string false "Campaign (exact, case-insensitive)"
// @Param month query int false "Competency month (1-12)"
// @Param year query int false "Competency year"
// @Param from query string false "Commitment date from (YYYY-MM-DD, inclusive)"
// @Param to query string false "Commitment date to (YYYY-MM-DD, inclusive)"
// @Param q query string false "Search over process id and observation"
// @Success 200 {object} map[string]interface{} "Table columns and rows"
// @Router /records [get]
func (d *Dashboard) GetRecords(w http.ResponseWriter, r *http.Request) {
	subset := engine.Apply(d.Snapshot.Current(), parseSelection(r))

	columns, rows := engine.Table(subset)
	for _, row := range rows {
		// VALOR DO ESPELHO and LINK are the 4th and 8th export columns.
		if v, err := strconv.ParseFloat(row[3], 64); err == nil {
			row[3] = utils.FormatCurrency(v)
		}
		row[7] = utils.Linkify(row[7])
	}

	writeJSON(w, map[string]interface{}{
		"columns": columns,
		"rows":    rows,
		"count":   len(rows),
	})
}

// GetOptions returns the distinct values available per filter dimension
// @Summary Get filter options
// @Description Distinct secretariats, agencies, campaigns and competency months of the current dataset, for dropdown population
// @Tags dashboard
// @Produce json
// @Success 200 {object} engine.FilterOptions "Filter options"
// @Router /options [get]
func (d *Dashboard) GetOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, engine.Options(d.Snapshot.Current()))
}

// Reload rebuilds the dataset from the configured spreadsheet
// @Summary Reload the dataset
// @Description Re-read the spreadsheet and atomically swap the served dataset. On failure the previous dataset keeps serving.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Reload summary"
// @Failure 500 {object} map[string]interface{} "Reload failed, previous dataset still serving"
// @Router /reload [post]
func (d *Dashboard) Reload(w http.ResponseWriter, r *http.Request) {
	loadID := uuid.New().String()
	if err := store.SaveLoad(loadID, d.Cfg.ExcelPath, d.Cfg.SheetName); err != nil {
		log.Printf("❌ Failed to record load %s: %v", loadID, err)
	}

	ds, stats, err := dataset.Load(d.Cfg.ExcelPath, d.Cfg.SheetName)
	if err != nil {
		store.FailLoad(loadID, err)
		log.Printf("❌ Reload %s failed, previous dataset still serving: %v", loadID, err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusForLoadError(err))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"loadId": loadID,
			"status": "failed",
			"error":  err.Error(),
		})
		return
	}

	d.Snapshot.Swap(ds, stats)
	if err := store.CompleteLoad(loadID, stats); err != nil {
		log.Printf("❌ Failed to record load completion %s: %v", loadID, err)
	}

	writeJSON(w, map[string]interface{}{
		"loadId":        loadID,
		"status":        "completed",
		"recordCount":   stats.Rows,
		"skippedRows":   stats.SkippedRows,
		"degradedCells": stats.DegradedCells,
	})
}

// ExportXLSX streams the filtered subset as a spreadsheet
// @Summary Export filtered records
// @Description Apply the filter selection and return the matching records as an xlsx attachment
// @Tags dashboard
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param secretariat query string false "Secretariat (exact, case-insensitive)"
// @Param agency query string false "Agency (exact, case-insensitive)"
// @Param campaign query string false "Campaign (exact, case-insensitive)"
// @Param month query int false "Competency month (1-12)"
// @Param year query int false "Competency year"
// @Param from query string false "Commitment date from (YYYY-MM-DD, inclusive)"
// @Param to query string false "Commitment date to (YYYY-MM-DD, inclusive)"
// @Param q query string false "Search over process id and observation"
// @Success 200 {file} binary "Workbook with the filtered records"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /export [get]
func (d *Dashboard) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	subset := engine.Apply(d.Snapshot.Current(), parseSelection(r))

	buf, err := engine.WriteXLSX(subset)
	if err != nil {
		log.Printf("❌ Export failed: %v", err)
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="controle_processos_filtrado.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// ExportPDF streams the filtered subset as a printable table
// @Summary Export filtered records as PDF
// @Description Apply the filter selection and return the matching records as a landscape A4 PDF attachment
// @Tags dashboard
// @Produce application/pdf
// @Param secretariat query string false "Secretariat (exact, case-insensitive)"
// @Param agency query string false "Agency (exact, case-insensitive)"
// @Param campaign query string false "Campaign (exact, case-insensitive)"
// @Param month query int false "Competency month (1-12)"
// @Param year query int false "Competency year"
// @Param from query string false "Commitment date from (YYYY-MM-DD, inclusive)"
// @Param to query string false "Commitment date to (YYYY-MM-DD, inclusive)"
// @Param q query string false "Search over process id and observation"
// @Success 200 {file} binary "PDF with the filtered records"
// @Failure 500 {object} map[string]interface{} "Export failed"
// @Router /export/pdf [get]
func (d *Dashboard) ExportPDF(w http.ResponseWriter, r *http.Request) {
	subset := engine.Apply(d.Snapshot.Current(), parseSelection(r))

	buf, err := engine.WritePDF(subset)
	if err != nil {
		log.Printf("❌ PDF export failed: %v", err)
		http.Error(w, "Failed to build export", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="controle_processos_filtrado.pdf"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

// ListLoads returns the reload audit history
// @Summary List load history
// @Description All dataset load attempts, newest first, with row and degraded-cell counts
// @Tags loads
// @Produce json
// @Success 200 {array} map[string]interface{} "Load history"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /loads [get]
func (d *Dashboard) ListLoads(w http.ResponseWriter, r *http.Request) {
	loads, err := store.ListLoads()
	if err != nil {
		http.Error(w, "Failed to fetch load history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, loads)
}

// GetLoadErrors returns the errors recorded for one load
// @Summary Get load errors
// @Description Errors recorded for a specific load attempt
// @Tags loads
// @Produce json
// @Param id path string true "Load ID"
// @Success 200 {object} map[string]interface{} "Load errors"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /loads/{id}/errors [get]
func (d *Dashboard) GetLoadErrors(w http.ResponseWriter, r *http.Request) {
	loadID := chi.URLParam(r, "id")
	msgs, err := store.GetLoadErrors(loadID)
	if err != nil {
		http.Error(w, "Failed to retrieve errors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"load_id": loadID,
		"errors":  msgs,
		"count":   len(msgs),
	})
}

// Health reports readiness and basic dataset info
// @Summary Health check
// @Description Reports whether a dataset is loaded and when
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{} "Health info"
// @Router /health [get]
func (d *Dashboard) Health(w http.ResponseWriter, r *http.Request) {
	stats, loadedAt := d.Snapshot.Info()
	writeJSON(w, map[string]interface{}{
		"status":      "ok",
		"recordCount": stats.Rows,
		"loadedAt":    loadedAt.UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

// statusForLoadError maps the load error taxonomy to an HTTP status.
func statusForLoadError(err error) int {
	switch {
	case errors.Is(err, dataset.ErrFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, dataset.ErrSheetNotFound), errors.Is(err, dataset.ErrMissingColumn):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
