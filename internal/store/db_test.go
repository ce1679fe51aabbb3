package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-process-dashboard/internal/dataset"
)

func TestLoadAuditLifecycle(t *testing.T) {
	require.NoError(t, InitDB(filepath.Join(t.TempDir(), "audit.db")))

	require.NoError(t, SaveLoad("load-1", "controle.xlsx", "GERAL"))
	require.NoError(t, CompleteLoad("load-1", dataset.LoadStats{Rows: 42, SkippedRows: 1, DegradedCells: 3, Duration: 120 * time.Millisecond}))

	require.NoError(t, SaveLoad("load-2", "controle.xlsx", "GERAL"))
	require.NoError(t, FailLoad("load-2", errors.New("sheet not found")))

	loads, err := ListLoads()
	require.NoError(t, err)
	require.Len(t, loads, 2)

	statuses := map[string]string{}
	for _, l := range loads {
		statuses[l["id"].(string)] = l["status"].(string)
	}
	assert.Equal(t, "completed", statuses["load-1"])
	assert.Equal(t, "failed", statuses["load-2"])

	msgs, err := GetLoadErrors("load-2")
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "sheet not found", msgs[0])

	msgs, err = GetLoadErrors("load-1")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
