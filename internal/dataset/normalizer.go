package dataset

import (
	"strconv"
	"strings"
	"time"

	"go-process-dashboard/internal/model"
)

// Canonical fields of the process-control schema.
const (
	fieldProcessID      = "processId"
	fieldSecretariat    = "secretariat"
	fieldAgency         = "agency"
	fieldCampaign       = "campaign"
	fieldCompetency     = "competency"
	fieldCommitmentDate = "commitmentDate"
	fieldValue          = "value"
	fieldObservation    = "observation"
	fieldLink           = "link"
)

// headerAliases maps each canonical field to the header spellings seen in the
// source spreadsheets. Matching is done on the folded form (lowercase,
// collapsed whitespace, accents stripped), so "  SECRETARIA " and "Secretaria"
// both resolve to secretariat.
var headerAliases = map[string][]string{
	fieldProcessID:      {"processo", "n processo", "process id"},
	fieldSecretariat:    {"secretaria", "secretariat"},
	fieldAgency:         {"agencia", "agency"},
	fieldCampaign:       {"campanha", "campaign"},
	fieldCompetency:     {"competencia", "competency"},
	fieldCommitmentDate: {"data do empenho", "data empenho", "commitment date"},
	fieldValue:          {"valor do espelho", "valor", "value"},
	fieldObservation:    {"observacao", "obs", "observation"},
	fieldLink:           {"link", "espelho", "url"},
}

// requiredFields must each resolve to some column or the whole load fails.
// Everything the KPIs and series are built from is here; the remaining
// fields degrade to empty when their column is absent.
var requiredFields = []string{fieldSecretariat, fieldAgency, fieldCampaign, fieldValue}

// accentFolder strips the Portuguese diacritics that show up in the source
// headers (AGÊNCIA, COMPETÊNCIA, OBSERVAÇÃO).
var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "â", "a", "ã", "a", "ä", "a",
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"í", "i", "ì", "i", "î", "i", "ï", "i",
	"ó", "o", "ò", "o", "ô", "o", "õ", "o", "ö", "o",
	"ú", "u", "ù", "u", "û", "u", "ü", "u",
	"ç", "c", "º", "", "ª", "",
)

// foldHeader normalizes a raw header cell for alias comparison.
func foldHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = accentFolder.Replace(h)
	return strings.Join(strings.Fields(h), " ")
}

// ColumnMap is the fixed field→column-index mapping resolved once per load.
// No per-row header lookup happens after resolution.
type ColumnMap map[string]int

// ResolveColumns matches the header row against the alias table. The first
// column matching an alias wins; unmatched headers are ignored. Returns
// ErrMissingColumn (wrapped, naming the fields) when any required field has
// no column at all.
func ResolveColumns(headers []string) (ColumnMap, error) {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = foldHeader(h)
	}

	cols := make(ColumnMap)
	for field, aliases := range headerAliases {
		for _, alias := range aliases {
			idx := -1
			for i, h := range folded {
				if h == alias {
					idx = i
					break
				}
			}
			if idx >= 0 {
				cols[field] = idx
				break
			}
		}
	}

	var missing []string
	for _, field := range requiredFields {
		if _, ok := cols[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, &missingColumnError{fields: missing}
	}
	return cols, nil
}

type missingColumnError struct {
	fields []string
}

func (e *missingColumnError) Error() string {
	return "required column not found: " + strings.Join(e.fields, ", ")
}

func (e *missingColumnError) Unwrap() error { return ErrMissingColumn }

// cell returns the raw cell for a canonical field, or "" when the column is
// absent or the row is short.
func (c ColumnMap) cell(row []string, field string) string {
	idx, ok := c[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// NormalizeRow coerces one raw spreadsheet row into a Record. It never fails:
// unparseable cells degrade to null/zero/empty and are counted in degraded.
func (c ColumnMap) NormalizeRow(row []string) (rec model.Record, degraded int) {
	rec.ProcessID = c.cell(row, fieldProcessID)
	rec.Secretariat = c.cell(row, fieldSecretariat)
	rec.Agency = c.cell(row, fieldAgency)
	rec.Campaign = c.cell(row, fieldCampaign)
	rec.Observation = c.cell(row, fieldObservation)
	rec.Link = c.cell(row, fieldLink)

	if raw := c.cell(row, fieldValue); raw != "" {
		v, ok := parseCurrency(raw)
		if !ok {
			degraded++
		}
		rec.Value = v
	}

	if raw := c.cell(row, fieldCommitmentDate); raw != "" {
		if t, ok := parseDate(raw); ok {
			rec.CommitmentDate = &t
		} else {
			degraded++
		}
	}

	if raw := c.cell(row, fieldCompetency); raw != "" {
		comp, ok := parseCompetency(raw)
		if !ok {
			degraded++
		}
		rec.Competency = comp
	}

	return rec, degraded
}

// parseCurrency handles the formats the value column arrives in: plain
// numbers ("1234.56"), Brazilian locale ("R$ 1.234,56", "1.234,56") and
// negatives. Unparseable input yields (0, false); negative values pass
// through unchanged.
func parseCurrency(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimPrefix(s, "r$")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, false
	}

	if strings.Contains(s, ",") {
		// Brazilian locale: dots group thousands, comma is the decimal mark.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// dateFormats are tried in order; the sheet is day-first.
var dateFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02",
	"02/01/06",
}

func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ptMonths covers the abbreviated Portuguese month names that appear in
// competency cells like "mai/2025".
var ptMonths = map[string]int{
	"jan": 1, "fev": 2, "mar": 3, "abr": 4, "mai": 5, "jun": 6,
	"jul": 7, "ago": 8, "set": 9, "out": 10, "nov": 11, "dez": 12,
}

// competencyFormats are the numeric month/year shapes: "05/2025", "2025-05",
// "05-2025".
var competencyFormats = []string{"01/2006", "2006-01", "01-2006"}

// parseCompetency derives the (month, year) pair from a competency cell.
// Falls back to a full day-first date, discarding the day.
func parseCompetency(raw string) (model.Competency, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))

	for _, layout := range competencyFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return model.Competency{Month: int(t.Month()), Year: t.Year()}, true
		}
	}

	// "mai/2025", "mai-2025"
	if sep := strings.IndexAny(s, "/-"); sep > 0 {
		if month, ok := ptMonths[strings.TrimSpace(s[:sep])]; ok {
			if year, err := strconv.Atoi(strings.TrimSpace(s[sep+1:])); err == nil && year > 0 {
				return model.Competency{Month: month, Year: year}, true
			}
		}
	}

	if t, ok := parseDate(s); ok {
		return model.Competency{Month: int(t.Month()), Year: t.Year()}, true
	}
	return model.Competency{}, false
}

// isBlankRow reports whether every cell in the row is empty after trimming.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
