package model

import "strings"

// FilterAll disables the priority or status dimension of a filter.
const FilterAll = "All"

type Filter struct {
	Query    string
	Priority string
	Status   string
}

func NewFilter() Filter {
	return Filter{Priority: FilterAll, Status: FilterAll}
}

// Active reports whether any dimension narrows the list.
func (f Filter) Active() bool {
	return strings.TrimSpace(f.Query) != "" ||
		(f.Priority != "" && f.Priority != FilterAll) ||
		(f.Status != "" && f.Status != FilterAll)
}

// Apply narrows tasks to those matching every active dimension. The text
// query is a case-insensitive substring match against title or description;
// priority and status are exact matches unless set to All. The input slice
// is never mutated.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, t := range tasks {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		if f.Priority != "" && f.Priority != FilterAll && string(t.Priority) != f.Priority {
			continue
		}
		if f.Status != "" && f.Status != FilterAll && string(t.Status) != f.Status {
			continue
		}
		out = append(out, t)
	}
	return out
}
