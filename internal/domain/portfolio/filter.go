package portfolio

// FilterOptions narrows a record set. An empty category or phase set means
// no restriction on that column.
type FilterOptions struct {
	Categories  []string
	Phases      []string
	MinPriority int
}

// Filter returns the records matching opts, preserving input order. The
// selection is pure: the input slice is never modified.
func Filter(records []Record, opts FilterOptions) []Record {
	categories := toSet(opts.Categories)
	phases := toSet(opts.Phases)

	filtered := make([]Record, 0, len(records))
	for _, rec := range records {
		if len(categories) > 0 && !categories[rec.Category] {
			continue
		}
		if len(phases) > 0 && !phases[rec.Phase] {
			continue
		}
		if rec.PriorityLevel < opts.MinPriority {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
