package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"sort"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/ganot/portico/internal/domain/portfolio"
)

const (
	minPriorityFloor = 1
	minPriorityCeil  = 4
)

// parseFilterOptions reads the three filter parameters from the query
// string. Absent or invalid min_priority means no priority restriction;
// out-of-range values are clamped to the slider range.
func parseFilterOptions(r *http.Request) portfolio.FilterOptions {
	query := r.URL.Query()

	minPriority := minPriorityFloor
	if raw := query.Get("min_priority"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			minPriority = v
		}
	}
	if minPriority < minPriorityFloor {
		minPriority = minPriorityFloor
	}
	if minPriority > minPriorityCeil {
		minPriority = minPriorityCeil
	}

	return portfolio.FilterOptions{
		Categories:  query["category"],
		Phases:      query["phase"],
		MinPriority: minPriority,
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshots.GetOrLoad(r.Context())
	s.writeJSON(w, http.StatusOK, portfolio.Summarize(snap))
}

// ProjectsResponse is the JSON shape of the filtered record listing.
type ProjectsResponse struct {
	Projects    []portfolio.Record `json:"projects"`
	Total       int                `json:"total"`
	Unavailable bool               `json:"unavailable,omitempty"`
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshots.GetOrLoad(r.Context())
	filtered := portfolio.Filter(snap.Records, parseFilterOptions(r))

	s.writeJSON(w, http.StatusOK, ProjectsResponse{
		Projects:    filtered,
		Total:       len(snap.Records),
		Unavailable: snap.Unavailable,
	})
}

// handleRefresh drops the cached snapshot, reloads, and returns the fresh
// summary. This is the manual refresh trigger of the dashboard.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.snapshots.Invalidate()
	snap := s.snapshots.GetOrLoad(r.Context())
	s.writeJSON(w, http.StatusOK, portfolio.Summarize(snap))
}

func (s *Server) handleRefreshRedirect(w http.ResponseWriter, r *http.Request) {
	s.snapshots.Invalidate()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

type dashboardPage struct {
	Title      string
	Summary    portfolio.Summary
	Charts     []template.HTML
	LoadedAt   string
	TTLSeconds int
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshots.GetOrLoad(r.Context())
	sum := portfolio.Summarize(snap)

	chartList := []renderable{
		categoryTreemapChart(sum),
		phasePipelineChart(sum),
		riskImpactChart(sum),
		resourcePieChart(sum),
	}

	snippets := make([]template.HTML, 0, len(chartList))
	for _, chart := range chartList {
		snippet, err := chartSnippet(chart)
		if err != nil {
			s.logger.Error("rendering chart", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		snippets = append(snippets, snippet)
	}

	s.renderPage(w, dashboardTmpl, dashboardPage{
		Title:      "Project Portfolio Dashboard",
		Summary:    sum,
		Charts:     snippets,
		LoadedAt:   humanize.Time(snap.LoadedAt),
		TTLSeconds: int(s.ttl.Seconds()),
	})
}

type filterOption struct {
	Name     string
	Selected bool
}

type projectsPage struct {
	Title       string
	Summary     portfolio.Summary
	Projects    []portfolio.Record
	Categories  []filterOption
	Phases      []filterOption
	MinPriority int
}

func (s *Server) handleProjectsPage(w http.ResponseWriter, r *http.Request) {
	snap := s.snapshots.GetOrLoad(r.Context())
	sum := portfolio.Summarize(snap)
	opts := parseFilterOptions(r)
	filtered := portfolio.Filter(snap.Records, opts)

	s.renderPage(w, projectsTmpl, projectsPage{
		Title:       "Project Details",
		Summary:     sum,
		Projects:    filtered,
		Categories:  categoryOptions(snap.Records, opts.Categories),
		Phases:      phaseOptions(opts.Phases),
		MinPriority: opts.MinPriority,
	})
}

func categoryOptions(records []portfolio.Record, selected []string) []filterOption {
	seen := make(map[string]bool)
	var names []string
	for _, rec := range records {
		if !seen[rec.Category] {
			seen[rec.Category] = true
			names = append(names, rec.Category)
		}
	}
	sort.Strings(names)

	chosen := make(map[string]bool, len(selected))
	for _, name := range selected {
		chosen[name] = true
	}

	options := make([]filterOption, 0, len(names))
	for _, name := range names {
		options = append(options, filterOption{Name: name, Selected: chosen[name]})
	}
	return options
}

func phaseOptions(selected []string) []filterOption {
	chosen := make(map[string]bool, len(selected))
	for _, name := range selected {
		chosen[name] = true
	}

	options := make([]filterOption, 0, len(portfolio.PhaseOrder))
	for _, phase := range portfolio.PhaseOrder {
		options = append(options, filterOption{Name: phase, Selected: chosen[phase]})
	}
	return options
}
