package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-process-dashboard/internal/model"
)

func TestWritePDF(t *testing.T) {
	commitment := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	ds := model.Dataset{
		{ProcessID: "P-1", Secretariat: "Saúde", Agency: "Alfa", Campaign: "Vacinação", Value: 1234.56, Competency: model.Competency{Month: 1, Year: 2024}, CommitmentDate: &commitment, Link: "https://example.org/p1"},
		{ProcessID: "P-2", Secretariat: "Educação", Agency: "Beta", Campaign: "Matrícula", Value: 250.75, Observation: "aguardando empenho"},
	}

	buf, err := WritePDF(ds)
	require.NoError(t, err)
	assert.True(t, len(buf.Bytes()) > 1000)
	assert.Equal(t, "%PDF-", string(buf.Bytes()[:5]))
}

func TestWritePDFEmptySubset(t *testing.T) {
	buf, err := WritePDF(model.Dataset{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(buf.Bytes()[:5]))
}

func TestWritePDFPaginatesLongSubsets(t *testing.T) {
	ds := make(model.Dataset, 0, 200)
	for i := 0; i < 200; i++ {
		ds = append(ds, model.Record{
			ProcessID:   fmt.Sprintf("P-%03d", i),
			Secretariat: "Saúde",
			Agency:      "Alfa",
			Campaign:    "Vacinação",
			Value:       float64(i),
			Competency:  model.Competency{Month: 1, Year: 2024},
		})
	}

	short, err := WritePDF(ds[:1])
	require.NoError(t, err)
	long, err := WritePDF(ds)
	require.NoError(t, err)
	assert.Greater(t, long.Len(), short.Len())
}
