package engine

import (
	"sort"

	"go-process-dashboard/internal/model"
)

// FilterOptions holds the distinct values per categorical dimension, used to
// populate the dashboard's dropdowns.
type FilterOptions struct {
	Secretariats []string `json:"secretariats"`
	Agencies     []string `json:"agencies"`
	Campaigns    []string `json:"campaigns"`
	Competencies []string `json:"competencies"`
}

// Options scans the dataset once and returns the sorted distinct non-empty
// values of each categorical dimension. Competency labels are YYYY-MM, so
// lexical order is chronological order.
func Options(ds model.Dataset) FilterOptions {
	secretariats := make(map[string]bool)
	agencies := make(map[string]bool)
	campaigns := make(map[string]bool)
	competencies := make(map[string]bool)

	for _, rec := range ds {
		if rec.Secretariat != "" {
			secretariats[rec.Secretariat] = true
		}
		if rec.Agency != "" {
			agencies[rec.Agency] = true
		}
		if rec.Campaign != "" {
			campaigns[rec.Campaign] = true
		}
		if !rec.Competency.IsZero() {
			competencies[rec.Competency.String()] = true
		}
	}

	return FilterOptions{
		Secretariats: sortedKeys(secretariats),
		Agencies:     sortedKeys(agencies),
		Campaigns:    sortedKeys(campaigns),
		Competencies: sortedKeys(competencies),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
