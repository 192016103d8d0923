package portfolio

import (
	"math"
	"sort"
)

// HighPriorityThreshold is the priority level at or above which a project
// counts as high priority.
const HighPriorityThreshold = 3

// PhaseCount is one bucket of the phase pipeline.
type PhaseCount struct {
	Phase   string  `json:"phase"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// RiskImpactCell counts the records sharing a (risk, impact) pair.
type RiskImpactCell struct {
	RiskLevel      int `json:"risk_level"`
	BusinessImpact int `json:"business_impact"`
	Count          int `json:"count"`
}

// ResourceCount is one slice of the resource type distribution.
type ResourceCount struct {
	Code  int    `json:"code"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ProjectWeight is one project inside a category group, weighted by its
// priority level.
type ProjectWeight struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
}

// CategoryNode groups the projects of one category. Weight is the sum of
// the member project weights.
type CategoryNode struct {
	Category string          `json:"category"`
	Weight   int             `json:"weight"`
	Projects []ProjectWeight `json:"projects"`
}

// Summary holds every aggregate the dashboard renders.
type Summary struct {
	TotalProjects int              `json:"total_projects"`
	HighPriority  int              `json:"high_priority"`
	Active        int              `json:"active"`
	Categories    int              `json:"categories"`
	Phases        []PhaseCount     `json:"phases"`
	RiskImpact    []RiskImpactCell `json:"risk_impact"`
	Resources     []ResourceCount  `json:"resources"`
	CategoryTree  []CategoryNode   `json:"category_tree"`
	Unavailable   bool             `json:"unavailable,omitempty"`
}

// Summarize computes all dashboard aggregates over a snapshot. With zero
// records every count is zero and every percentage is 0 rather than NaN.
// Records whose phase is outside the fixed set contribute to the totals
// but to no phase bucket.
func Summarize(snap Snapshot) Summary {
	sum := Summary{
		TotalProjects: len(snap.Records),
		Unavailable:   snap.Unavailable,
	}

	categories := make(map[string]bool)
	phaseCounts := make(map[string]int)
	resourceCounts := make(map[int]int)

	for _, rec := range snap.Records {
		if rec.PriorityLevel >= HighPriorityThreshold {
			sum.HighPriority++
		}
		if rec.Phase == PhaseInProgress {
			sum.Active++
		}
		categories[rec.Category] = true
		phaseCounts[rec.Phase]++
		resourceCounts[rec.ResourceType]++
	}
	sum.Categories = len(categories)

	sum.Phases = make([]PhaseCount, 0, len(PhaseOrder))
	for _, phase := range PhaseOrder {
		count := phaseCounts[phase]
		sum.Phases = append(sum.Phases, PhaseCount{
			Phase:   phase,
			Count:   count,
			Percent: percentOf(count, sum.TotalProjects),
		})
	}

	sum.RiskImpact = riskImpactCells(snap.Records)

	sum.Resources = make([]ResourceCount, 0, len(ResourceTypeCodes))
	for _, code := range ResourceTypeCodes {
		label, _ := ResourceTypeLabel(code)
		sum.Resources = append(sum.Resources, ResourceCount{
			Code:  code,
			Label: label,
			Count: resourceCounts[code],
		})
	}

	sum.CategoryTree = categoryTree(snap.Records)

	return sum
}

// percentOf returns count as a percentage of total, rounded to one decimal
// place. Zero when total is zero.
func percentOf(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

func riskImpactCells(records []Record) []RiskImpactCell {
	type pair struct{ risk, impact int }

	counts := make(map[pair]int)
	for _, rec := range records {
		counts[pair{rec.RiskLevel, rec.BusinessImpact}]++
	}

	cells := make([]RiskImpactCell, 0, len(counts))
	for p, count := range counts {
		cells = append(cells, RiskImpactCell{
			RiskLevel:      p.risk,
			BusinessImpact: p.impact,
			Count:          count,
		})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].RiskLevel != cells[j].RiskLevel {
			return cells[i].RiskLevel < cells[j].RiskLevel
		}
		return cells[i].BusinessImpact < cells[j].BusinessImpact
	})
	return cells
}

func categoryTree(records []Record) []CategoryNode {
	grouped := make(map[string][]ProjectWeight)
	totals := make(map[string]int)

	for _, rec := range records {
		grouped[rec.Category] = append(grouped[rec.Category], ProjectWeight{
			Name:   rec.ProjectName,
			Weight: rec.PriorityLevel,
		})
		totals[rec.Category] += rec.PriorityLevel
	}

	nodes := make([]CategoryNode, 0, len(grouped))
	for category, projects := range grouped {
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Weight > projects[j].Weight
		})
		nodes = append(nodes, CategoryNode{
			Category: category,
			Weight:   totals[category],
			Projects: projects,
		})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].Weight != nodes[j].Weight {
			return nodes[i].Weight > nodes[j].Weight
		}
		return nodes[i].Category < nodes[j].Category
	})
	return nodes
}
