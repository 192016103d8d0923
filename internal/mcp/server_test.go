package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ganot/portico/internal/domain/portfolio"
)

type stubSource struct {
	snap        portfolio.Snapshot
	invalidated int
}

func (s *stubSource) GetOrLoad(context.Context) portfolio.Snapshot { return s.snap }
func (s *stubSource) Invalidate()                                  { s.invalidated++ }

func TestHandleSummary(t *testing.T) {
	src := &stubSource{snap: portfolio.Snapshot{Records: []portfolio.Record{
		{ProjectName: "a", Category: "Infra", PriorityLevel: 4, Phase: "In Progress"},
		{ProjectName: "b", Category: "Ops", PriorityLevel: 1, Phase: "Planning"},
	}}}
	srv := &server{snapshots: src}

	result, out, err := srv.handleSummary(context.Background(), nil, SummaryInput{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Content)

	sum, ok := out.Data.(portfolio.Summary)
	require.True(t, ok)
	require.Equal(t, 2, sum.TotalProjects)
	require.Equal(t, 1, sum.HighPriority)
}

func TestHandleProjects_Filters(t *testing.T) {
	src := &stubSource{snap: portfolio.Snapshot{Records: []portfolio.Record{
		{ProjectName: "a", Category: "Infra", PriorityLevel: 3},
		{ProjectName: "b", Category: "Ops", PriorityLevel: 4},
	}}}
	srv := &server{snapshots: src}

	_, out, err := srv.handleProjects(context.Background(), nil, ProjectsInput{
		Categories: []string{"Infra"},
	})
	require.NoError(t, err)

	body, ok := out.Data.(map[string]any)
	require.True(t, ok)
	projects, ok := body["projects"].([]portfolio.Record)
	require.True(t, ok)
	require.Len(t, projects, 1)
	require.Equal(t, "a", projects[0].ProjectName)
	require.Equal(t, 2, body["total"])
}

func TestHandleRefresh_Invalidates(t *testing.T) {
	src := &stubSource{}
	srv := &server{snapshots: src}

	_, _, err := srv.handleRefresh(context.Background(), nil, RefreshInput{})
	require.NoError(t, err)
	require.Equal(t, 1, src.invalidated)
}
