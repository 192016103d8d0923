package portfolio_test

import (
	"testing"

	"github.com/ganot/portico/internal/domain/portfolio"
	"github.com/stretchr/testify/require"
)

func TestFilter_CategoryAndPriority(t *testing.T) {
	records := []portfolio.Record{
		{ProjectName: "A", Category: "Infra", PriorityLevel: 3},
		{ProjectName: "B", Category: "Infra", PriorityLevel: 1},
		{ProjectName: "C", Category: "Ops", PriorityLevel: 4},
	}

	got := portfolio.Filter(records, portfolio.FilterOptions{
		Categories:  []string{"Infra"},
		MinPriority: 2,
	})

	require.Len(t, got, 1)
	require.Equal(t, "A", got[0].ProjectName)
}

func TestFilter_NoRestrictionsReturnsAll(t *testing.T) {
	records := []portfolio.Record{
		{ProjectName: "A", Category: "Infra", PriorityLevel: 2, Phase: "Planning"},
		{ProjectName: "B", Category: "Ops", PriorityLevel: 1, Phase: "Completed"},
		{ProjectName: "C", Category: "Infra", PriorityLevel: 4, Phase: "On Hold"},
	}

	got := portfolio.Filter(records, portfolio.FilterOptions{MinPriority: 1})
	require.Equal(t, records, got)
}

func TestFilter_Idempotent(t *testing.T) {
	records := []portfolio.Record{
		{ProjectName: "A", Category: "Infra", PriorityLevel: 3, Phase: "Planning"},
		{ProjectName: "B", Category: "Ops", PriorityLevel: 2, Phase: "In Progress"},
		{ProjectName: "C", Category: "Infra", PriorityLevel: 4, Phase: "In Progress"},
	}
	opts := portfolio.FilterOptions{
		Phases:      []string{"In Progress"},
		MinPriority: 2,
	}

	once := portfolio.Filter(records, opts)
	twice := portfolio.Filter(once, opts)
	require.Equal(t, once, twice)
}

func TestFilter_PhaseSet(t *testing.T) {
	records := []portfolio.Record{
		{ProjectName: "A", Phase: "Planning"},
		{ProjectName: "B", Phase: "In Progress"},
		{ProjectName: "C", Phase: "On Hold"},
		{ProjectName: "D", Phase: "In Progress"},
	}

	got := portfolio.Filter(records, portfolio.FilterOptions{
		Phases: []string{"Planning", "In Progress"},
	})

	require.Len(t, got, 3)
	// Order of the input is preserved.
	require.Equal(t, "A", got[0].ProjectName)
	require.Equal(t, "B", got[1].ProjectName)
	require.Equal(t, "D", got[2].ProjectName)
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	records := []portfolio.Record{
		{ProjectName: "A", PriorityLevel: 1},
		{ProjectName: "B", PriorityLevel: 4},
	}

	_ = portfolio.Filter(records, portfolio.FilterOptions{MinPriority: 3})
	require.Equal(t, "A", records[0].ProjectName)
	require.Equal(t, "B", records[1].ProjectName)
}
