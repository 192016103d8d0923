package portfolio

import "time"

// Lifecycle phases in pipeline order.
const (
	PhasePlanning   = "Planning"
	PhaseInProgress = "In Progress"
	PhaseOnHold     = "On Hold"
	PhaseCompleted  = "Completed"
)

// PhaseOrder lists the lifecycle phases in pipeline order. Phase values
// outside this set are tolerated in the data but contribute to no phase
// bucket.
var PhaseOrder = []string{PhasePlanning, PhaseInProgress, PhaseOnHold, PhaseCompleted}

// KnownPhase reports whether phase belongs to the fixed lifecycle set.
func KnownPhase(phase string) bool {
	for _, p := range PhaseOrder {
		if p == phase {
			return true
		}
	}
	return false
}

// Resource type codes as stored by the tracker.
const (
	ResourceInternal = 1
	ResourceExternal = 2
	ResourceMixed    = 3
)

// ResourceTypeCodes lists the known codes in display order.
var ResourceTypeCodes = []int{ResourceInternal, ResourceExternal, ResourceMixed}

var resourceTypeLabels = map[int]string{
	ResourceInternal: "Internal",
	ResourceExternal: "External",
	ResourceMixed:    "Mixed",
}

// ResourceTypeLabel maps a resource type code to its display label.
// Codes outside the known set have no label.
func ResourceTypeLabel(code int) (string, bool) {
	label, ok := resourceTypeLabels[code]
	return label, ok
}

// Record is one row of the project tracker table. Rows are written by an
// external system; this service only reads them.
type Record struct {
	ProjectName       string `json:"project_name"`
	Category          string `json:"category"`
	PriorityLevel     int    `json:"priority_level"`
	Phase             string `json:"project_phase"`
	BusinessImpact    int    `json:"business_impact"`
	RiskLevel         int    `json:"risk_level"`
	ResourceType      int    `json:"resource_type"`
	ResourceTypeLabel string `json:"resource_type_label,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// Snapshot is the full in-memory copy of the tracker table at load time.
// Unavailable marks a snapshot produced while the data source could not be
// reached; such snapshots are always empty.
type Snapshot struct {
	Records     []Record  `json:"records"`
	LoadedAt    time.Time `json:"loaded_at"`
	Unavailable bool      `json:"unavailable,omitempty"`
}
