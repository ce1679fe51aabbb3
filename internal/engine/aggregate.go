package engine

import (
	"sort"

	"github.com/montanaflynn/stats"

	"go-process-dashboard/internal/model"
)

// DefaultTopCampaigns is the truncation size for the campaign ranking, the
// visible set size of the dashboard's "Top Campanhas" chart.
const DefaultTopCampaigns = 10

// SeriesPoint is one (label, value) entry of a chart series.
type SeriesPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// AggregateResult carries the KPI scalars and chart series derived from one
// filtered subset. It is recomputed on every selection change and never
// cached across selections.
type AggregateResult struct {
	Count                int     `json:"count"`
	TotalValue           float64 `json:"totalValue"`
	DistinctSecretariats int     `json:"distinctSecretariats"`
	DistinctAgencies     int     `json:"distinctAgencies"`
	MeanValue            float64 `json:"meanValue"`
	MedianValue          float64 `json:"medianValue"`

	ValueBySecretariat  []SeriesPoint `json:"valueBySecretariat"`
	ValueByAgency       []SeriesPoint `json:"valueByAgency"`
	MonthlyEvolution    []SeriesPoint `json:"monthlyEvolution"`
	TopCampaignsByValue []SeriesPoint `json:"topCampaignsByValue"`
}

// Compute derives KPIs and chart series from a filtered subset. An empty
// subset yields zero KPIs and empty series, never an error. Identical input
// always yields identical output: every series has a total order (value
// descending with label-ascending tie-break, or chronological for the
// monthly evolution).
func Compute(subset model.Dataset, topCampaigns int) AggregateResult {
	if topCampaigns <= 0 {
		topCampaigns = DefaultTopCampaigns
	}

	res := AggregateResult{Count: len(subset)}

	values := make([]float64, 0, len(subset))
	secretariats := make(map[string]bool)
	agencies := make(map[string]bool)
	for _, rec := range subset {
		res.TotalValue += rec.Value
		values = append(values, rec.Value)
		secretariats[rec.Secretariat] = true
		agencies[rec.Agency] = true
	}
	res.DistinctSecretariats = len(secretariats)
	res.DistinctAgencies = len(agencies)

	if len(values) > 0 {
		if mean, err := stats.Mean(values); err == nil {
			res.MeanValue = mean
		}
		if median, err := stats.Median(values); err == nil {
			res.MedianValue = median
		}
	}

	res.ValueBySecretariat = sumByLabel(subset, func(r model.Record) string { return r.Secretariat })
	res.ValueByAgency = sumByLabel(subset, func(r model.Record) string { return r.Agency })
	res.MonthlyEvolution = monthlyEvolution(subset)

	campaigns := sumByLabel(subset, func(r model.Record) string { return r.Campaign })
	if len(campaigns) > topCampaigns {
		campaigns = campaigns[:topCampaigns]
	}
	res.TopCampaignsByValue = campaigns

	return res
}

// sumByLabel groups the subset by a string dimension and sums Value per
// group, ordered by summed value descending, ties broken by label ascending.
func sumByLabel(subset model.Dataset, label func(model.Record) string) []SeriesPoint {
	sums := make(map[string]float64)
	for _, rec := range subset {
		sums[label(rec)] += rec.Value
	}

	series := make([]SeriesPoint, 0, len(sums))
	for l, v := range sums {
		series = append(series, SeriesPoint{Label: l, Value: v})
	}
	sort.Slice(series, func(i, j int) bool {
		if series[i].Value != series[j].Value {
			return series[i].Value > series[j].Value
		}
		return series[i].Label < series[j].Label
	})
	return series
}

// monthlyEvolution sums Value per competency month, chronologically
// ascending. Months absent from the subset do not appear; records whose
// competency could not be derived are left out, matching the source
// dashboard's dropna before the evolution chart.
func monthlyEvolution(subset model.Dataset) []SeriesPoint {
	sums := make(map[model.Competency]float64)
	for _, rec := range subset {
		if rec.Competency.IsZero() {
			continue
		}
		sums[rec.Competency] += rec.Value
	}

	months := make([]model.Competency, 0, len(sums))
	for c := range sums {
		months = append(months, c)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	series := make([]SeriesPoint, 0, len(months))
	for _, c := range months {
		series = append(series, SeriesPoint{Label: c.String(), Value: sums[c]})
	}
	return series
}
