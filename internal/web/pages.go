package web

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
)

// renderable is the chart rendering interface from go-echarts.
type renderable interface {
	Render(w io.Writer) error
}

// chartSnippet renders a chart and extracts the embeddable div and script
// from the standalone page the library emits. The echarts asset script is
// included once by the page layout.
func chartSnippet(chart renderable) (template.HTML, error) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}
	return template.HTML(extractChartContent(buf.String())), nil
}

func extractChartContent(page string) string {
	start := strings.Index(page, `<div class="container">`)
	end := strings.LastIndex(page, `</body>`)
	if start == -1 || end == -1 || end < start {
		return page
	}
	return page[start:end]
}

const pageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"></script>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 2rem auto; max-width: 1200px; color: #222; }
a { color: #3498db; }
nav { margin-bottom: 1.5rem; }
nav a { margin-right: 1rem; }
.warning { background: #fcf3cf; border: 1px solid #f1c40f; border-radius: 6px; padding: 0.75rem 1rem; margin-bottom: 1.5rem; }
.metrics { display: flex; gap: 1rem; margin-bottom: 1.5rem; }
.metric { flex: 1; background: #f8f9fa; border-radius: 8px; padding: 1rem; text-align: center; }
.metric .value { font-size: 2rem; font-weight: 700; }
.metric .label { color: #666; }
.chart { margin-bottom: 2rem; }
.filters { display: flex; gap: 1.5rem; align-items: flex-end; margin-bottom: 1.5rem; }
.filters label { display: block; font-size: 0.85rem; color: #666; margin-bottom: 0.25rem; }
table { border-collapse: collapse; width: 100%; }
th, td { text-align: left; padding: 0.5rem 0.75rem; border-bottom: 1px solid #e0e0e0; }
th { background: #f8f9fa; }
footer { margin-top: 2rem; color: #888; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<nav><a href="/">Dashboard</a><a href="/projects">Project Details</a></nav>
{{if .Summary.Unavailable}}<div class="warning">No data available. Please check the tracker database connection.</div>{{end}}
`

const dashboardBody = `<div class="metrics">
<div class="metric"><div class="value">{{.Summary.TotalProjects}}</div><div class="label">Total Projects</div></div>
<div class="metric"><div class="value">{{.Summary.HighPriority}}</div><div class="label">High Priority</div></div>
<div class="metric"><div class="value">{{.Summary.Active}}</div><div class="label">Active Projects</div></div>
<div class="metric"><div class="value">{{.Summary.Categories}}</div><div class="label">Categories</div></div>
</div>
{{range .Charts}}<div class="chart">{{.}}</div>
{{end}}<div class="metrics">
{{range .Summary.Phases}}<div class="metric"><div class="value">{{printf "%.1f" .Percent}}%</div><div class="label">{{.Phase}}</div></div>
{{end}}</div>
<form method="post" action="/refresh"><button type="submit">Refresh Data</button></form>
<footer>Snapshot loaded {{.LoadedAt}}. Data refreshes automatically every {{.TTLSeconds}} seconds.</footer>
</body>
</html>
`

const projectsBody = `<form method="get" action="/projects" class="filters">
<div>
<label for="category">Filter by Category</label>
<select id="category" name="category" multiple size="4">
{{range .Categories}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select>
</div>
<div>
<label for="phase">Filter by Phase</label>
<select id="phase" name="phase" multiple size="4">
{{range .Phases}}<option value="{{.Name}}"{{if .Selected}} selected{{end}}>{{.Name}}</option>
{{end}}</select>
</div>
<div>
<label for="min_priority">Minimum Priority Level</label>
<input id="min_priority" type="number" name="min_priority" min="1" max="4" value="{{.MinPriority}}">
</div>
<div><button type="submit">Apply</button></div>
</form>
<table>
<thead><tr><th>Project Name</th><th>Category</th><th>Priority</th><th>Phase</th><th>Impact</th><th>Risk</th><th>Resources</th><th>Notes</th></tr></thead>
<tbody>
{{range .Projects}}<tr><td>{{.ProjectName}}</td><td>{{.Category}}</td><td>{{.PriorityLevel}}</td><td>{{.Phase}}</td><td>{{.BusinessImpact}}</td><td>{{.RiskLevel}}</td><td>{{.ResourceTypeLabel}}</td><td>{{.Notes}}</td></tr>
{{end}}</tbody>
</table>
<footer>{{len .Projects}} of {{.Summary.TotalProjects}} projects shown.</footer>
</body>
</html>
`

var (
	dashboardTmpl = template.Must(template.New("dashboard").Parse(pageHead + dashboardBody))
	projectsTmpl  = template.Must(template.New("projects").Parse(pageHead + projectsBody))
)

func (s *Server) renderPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		s.logger.Error("rendering page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
