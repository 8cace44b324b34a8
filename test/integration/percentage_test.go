package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type percentageRow struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

func getPercentages(t *testing.T, app *TestApp) []percentageRow {
	t.Helper()

	resp, err := app.Client.Get(app.Server.URL + "/percentage")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []percentageRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	return rows
}

func TestPercentageWithNoVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	rows := getPercentages(t, app)
	assert.Empty(t, rows)
}

func TestPercentageDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	for _, device := range []string{"d1", "d2", "d3"} {
		resp := castVote(t, app, device, "Alice", "android", "mock_android_token")
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp := castVote(t, app, "d4", "Bob", "ios", "mock_ios_token")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	rows := getPercentages(t, app)
	require.Len(t, rows, 2)

	// Order is unspecified; assert by name.
	byName := make(map[string]float64, len(rows))
	var sum float64
	for _, r := range rows {
		byName[r.Name] = r.Percentage
		sum += r.Percentage
	}

	assert.InDelta(t, 75.0, byName["Alice"], 1e-9)
	assert.InDelta(t, 25.0, byName["Bob"], 1e-9)
	assert.InDelta(t, 100.0, sum, 1e-9)
}
