package web_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ganot/portico/internal/cache"
	"github.com/ganot/portico/internal/domain/portfolio"
	"github.com/ganot/portico/internal/web"
)

func testRecords() []portfolio.Record {
	return []portfolio.Record{
		{ProjectName: "A", Category: "Infra", PriorityLevel: 3, Phase: "Planning", BusinessImpact: 3, RiskLevel: 2, ResourceType: 1, ResourceTypeLabel: "Internal"},
		{ProjectName: "B", Category: "Infra", PriorityLevel: 1, Phase: "Planning", BusinessImpact: 2, RiskLevel: 1, ResourceType: 2, ResourceTypeLabel: "External"},
		{ProjectName: "C", Category: "Ops", PriorityLevel: 4, Phase: "In Progress", BusinessImpact: 4, RiskLevel: 3, ResourceType: 3, ResourceTypeLabel: "Mixed"},
		{ProjectName: "D", Category: "Product", PriorityLevel: 2, Phase: "Completed", BusinessImpact: 1, RiskLevel: 1, ResourceType: 1, ResourceTypeLabel: "Internal"},
	}
}

func newTestServer(t *testing.T, load cache.LoadFunc) (*httptest.Server, *cache.SnapshotCache) {
	t.Helper()

	snapshots := cache.New(load, time.Minute)
	srv := httptest.NewServer(web.NewRouter(snapshots, nil, time.Minute))
	t.Cleanup(srv.Close)
	return srv, snapshots
}

func staticLoad(records []portfolio.Record) cache.LoadFunc {
	return func(context.Context) portfolio.Snapshot {
		return portfolio.Snapshot{Records: records, LoadedAt: time.Now()}
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, staticLoad(nil))

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPISummary(t *testing.T) {
	srv, _ := newTestServer(t, staticLoad(testRecords()))

	resp, err := http.Get(srv.URL + "/api/summary")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var sum portfolio.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	require.Equal(t, 4, sum.TotalProjects)
	require.Equal(t, 2, sum.HighPriority)
	require.Equal(t, 1, sum.Active)
	require.Equal(t, 3, sum.Categories)
	require.Len(t, sum.Phases, 4)
	require.Equal(t, 50.0, sum.Phases[0].Percent)
}

func TestAPIProjects_Filtered(t *testing.T) {
	srv, _ := newTestServer(t, staticLoad(testRecords()))

	resp, err := http.Get(srv.URL + "/api/projects?category=Infra&min_priority=2")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body web.ProjectsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, 4, body.Total)
	require.Len(t, body.Projects, 1)
	require.Equal(t, "A", body.Projects[0].ProjectName)
}

func TestAPIProjects_RepeatedParams(t *testing.T) {
	srv, _ := newTestServer(t, staticLoad(testRecords()))

	resp, err := http.Get(srv.URL + "/api/projects?phase=Planning&phase=In+Progress")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body web.ProjectsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Projects, 3)
}

func TestAPIProjects_MinPriorityClamped(t *testing.T) {
	srv, _ := newTestServer(t, staticLoad(testRecords()))

	resp, err := http.Get(srv.URL + "/api/projects?min_priority=99")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body web.ProjectsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	// Clamped to 4, not treated as an impossible threshold.
	require.Len(t, body.Projects, 1)
	require.Equal(t, "C", body.Projects[0].ProjectName)
}

func TestAPIRefresh_ReloadsSnapshot(t *testing.T) {
	loads := 0
	srv, _ := newTestServer(t, func(context.Context) portfolio.Snapshot {
		loads++
		return portfolio.Snapshot{Records: testRecords(), LoadedAt: time.Now()}
	})

	_, err := http.Get(srv.URL + "/api/summary")
	require.NoError(t, err)
	_, err = http.Get(srv.URL + "/api/summary")
	require.NoError(t, err)
	require.Equal(t, 1, loads)

	resp, err := http.Post(srv.URL+"/api/refresh", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 2, loads)

	var sum portfolio.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	require.Equal(t, 4, sum.TotalProjects)
}

func TestAPISummary_Unavailable(t *testing.T) {
	srv, _ := newTestServer(t, func(context.Context) portfolio.Snapshot {
		return portfolio.Snapshot{LoadedAt: time.Now(), Unavailable: true}
	})

	resp, err := http.Get(srv.URL + "/api/summary")
	require.NoError(t, err)
	defer resp.Body.Close()

	var sum portfolio.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sum))
	require.True(t, sum.Unavailable)
	require.Zero(t, sum.TotalProjects)
}
