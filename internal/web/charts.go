package web

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/ganot/portico/internal/domain/portfolio"
)

// One color per pipeline stage, in phase order.
var phaseColors = []string{"#2ecc71", "#3498db", "#f1c40f", "#9b59b6"}

const (
	chartWidth  = "100%"
	chartHeight = "420px"

	baseSymbolSize  = 12
	symbolSizeStep  = 6
	maxSymbolSize   = 60
	riskAxisMax     = 4
	impactAxisMax   = 5
	scatterPointHue = "#3498db"
)

func phasePipelineChart(sum portfolio.Summary) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Project Pipeline Status"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Projects"}),
	)

	labels := make([]string, 0, len(sum.Phases))
	data := make([]opts.BarData, 0, len(sum.Phases))
	for i, pc := range sum.Phases {
		labels = append(labels, pc.Phase)
		data = append(data, opts.BarData{
			Value:     pc.Count,
			ItemStyle: &opts.ItemStyle{Color: phaseColors[i%len(phaseColors)]},
		})
	}

	bar.SetXAxis(labels)
	bar.AddSeries("Projects", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)
	bar.XYReversal()

	return bar
}

func categoryTreemapChart(sum portfolio.Summary) *charts.TreeMap {
	tm := charts.NewTreeMap()
	tm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Projects by Category and Priority"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)

	nodes := make([]opts.TreeMapNode, 0, len(sum.CategoryTree))
	for _, cat := range sum.CategoryTree {
		children := make([]opts.TreeMapNode, 0, len(cat.Projects))
		for _, p := range cat.Projects {
			children = append(children, opts.TreeMapNode{Name: p.Name, Value: p.Weight})
		}
		nodes = append(nodes, opts.TreeMapNode{
			Name:     cat.Category,
			Value:    cat.Weight,
			Children: children,
		})
	}

	tm.AddSeries("Portfolio", nodes, charts.WithTreeMapOpts(opts.TreeMapChart{
		Roam:       opts.Bool(true),
		Label:      &opts.Label{Show: opts.Bool(true), Formatter: "{b}"},
		UpperLabel: &opts.UpperLabel{Show: opts.Bool(true)},
		Left:       "2%",
		Right:      "2%",
		Top:        "12%",
		Bottom:     "2%",
	}))

	return tm
}

func riskImpactChart(sum portfolio.Summary) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Risk vs Business Impact"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Risk Level", Type: "value", Max: riskAxisMax}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Business Impact", Type: "value", Max: impactAxisMax}),
	)

	points := make([]opts.ScatterData, 0, len(sum.RiskImpact))
	for _, cell := range sum.RiskImpact {
		size := baseSymbolSize + cell.Count*symbolSizeStep
		if size > maxSymbolSize {
			size = maxSymbolSize
		}
		points = append(points, opts.ScatterData{
			Value:      []any{cell.RiskLevel, cell.BusinessImpact, cell.Count},
			SymbolSize: size,
		})
	}

	scatter.AddSeries("Projects", points,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: scatterPointHue}),
	)

	return scatter
}

func resourcePieChart(sum portfolio.Summary) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: "Resource Distribution"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)

	data := make([]opts.PieData, 0, len(sum.Resources))
	for _, rc := range sum.Resources {
		data = append(data, opts.PieData{Name: rc.Label, Value: rc.Count})
	}

	pie.AddSeries("Resources", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c} ({d}%)"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"35%", "70%"}}),
	)

	return pie
}
