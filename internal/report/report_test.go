package report_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ganot/portico/internal/domain/portfolio"
	"github.com/ganot/portico/internal/report"
)

func TestWrite(t *testing.T) {
	snap := portfolio.Snapshot{Records: []portfolio.Record{
		{ProjectName: "Billing rewrite", Category: "Finance", PriorityLevel: 4, Phase: "In Progress", BusinessImpact: 4, RiskLevel: 2, ResourceTypeLabel: "Internal"},
		{ProjectName: "CDN migration", Category: "Infra", PriorityLevel: 2, Phase: "Planning", BusinessImpact: 3, RiskLevel: 3, ResourceTypeLabel: "External"},
	}, LoadedAt: time.Now().Add(-2 * time.Minute)}

	var buf bytes.Buffer
	report.Write(&buf, portfolio.Summarize(snap), snap.Records, snap.LoadedAt)
	out := buf.String()

	require.Contains(t, out, "Total Projects:  2")
	require.Contains(t, out, "Active Projects: 1")
	require.Contains(t, out, "  Planning       1  (50.0%)")
	require.Contains(t, out, "Billing rewrite")
	require.Contains(t, out, "CDN migration")
	require.Contains(t, out, "Snapshot loaded 2 minutes ago.")
	require.NotContains(t, out, "warning:")
}

func TestWrite_Unavailable(t *testing.T) {
	snap := portfolio.Snapshot{Unavailable: true, LoadedAt: time.Now()}

	var buf bytes.Buffer
	report.Write(&buf, portfolio.Summarize(snap), snap.Records, snap.LoadedAt)
	out := buf.String()

	require.Contains(t, out, "warning: no data available")
	require.Contains(t, out, "Total Projects:  0")
}
