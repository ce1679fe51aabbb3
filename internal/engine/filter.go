package engine

import (
	"strings"

	"go-process-dashboard/internal/model"
)

// Apply returns the subset of ds matching every populated dimension of sel,
// in the original relative order. Dimensions are AND-combined; an empty
// selection returns ds unchanged. Pure function: neither argument is mutated.
func Apply(ds model.Dataset, sel model.FilterSelection) model.Dataset {
	if sel.IsEmpty() {
		return ds
	}

	search := strings.ToLower(strings.TrimSpace(sel.SearchText))

	out := make(model.Dataset, 0, len(ds))
	for _, rec := range ds {
		if !matches(rec, sel, search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matches(rec model.Record, sel model.FilterSelection, search string) bool {
	if sel.Secretariat != "" && !strings.EqualFold(rec.Secretariat, sel.Secretariat) {
		return false
	}
	if sel.Agency != "" && !strings.EqualFold(rec.Agency, sel.Agency) {
		return false
	}
	if sel.Campaign != "" && !strings.EqualFold(rec.Campaign, sel.Campaign) {
		return false
	}
	if sel.CompetencyMonth != 0 && rec.Competency.Month != sel.CompetencyMonth {
		return false
	}
	if sel.CompetencyYear != 0 && rec.Competency.Year != sel.CompetencyYear {
		return false
	}

	if sel.CommitmentFrom != nil || sel.CommitmentTo != nil {
		// Records without a commitment date never fall inside a bounded range.
		if rec.CommitmentDate == nil {
			return false
		}
		if sel.CommitmentFrom != nil && rec.CommitmentDate.Before(*sel.CommitmentFrom) {
			return false
		}
		if sel.CommitmentTo != nil && rec.CommitmentDate.After(*sel.CommitmentTo) {
			return false
		}
	}

	if search != "" {
		haystack := strings.ToLower(rec.ProcessID + " " + rec.Observation)
		if !strings.Contains(haystack, search) {
			return false
		}
	}
	return true
}
