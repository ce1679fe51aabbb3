package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-process-dashboard/internal/model"
)

func TestOptionsDistinctSorted(t *testing.T) {
	ds := model.Dataset{
		{Secretariat: "Saúde", Agency: "Beta", Campaign: "Vacinação", Competency: model.Competency{Month: 2, Year: 2024}},
		{Secretariat: "Educação", Agency: "Alfa", Campaign: "Matrícula", Competency: model.Competency{Month: 1, Year: 2024}},
		{Secretariat: "Saúde", Agency: "Alfa", Campaign: "Vacinação", Competency: model.Competency{Month: 2, Year: 2024}},
	}

	opts := Options(ds)
	assert.Equal(t, []string{"Educação", "Saúde"}, opts.Secretariats)
	assert.Equal(t, []string{"Alfa", "Beta"}, opts.Agencies)
	assert.Equal(t, []string{"Matrícula", "Vacinação"}, opts.Campaigns)
	assert.Equal(t, []string{"2024-01", "2024-02"}, opts.Competencies)
}

func TestOptionsSkipsEmptyValues(t *testing.T) {
	ds := model.Dataset{
		{Secretariat: "Saúde"},
		{Secretariat: ""},
		{Agency: "Alfa"},
	}

	opts := Options(ds)
	assert.Equal(t, []string{"Saúde"}, opts.Secretariats)
	assert.Equal(t, []string{"Alfa"}, opts.Agencies)
	assert.Empty(t, opts.Campaigns)
	assert.Empty(t, opts.Competencies)
}
