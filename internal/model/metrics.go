package model

type Summary struct {
	Total          int
	Completed      int
	Pending        int
	CompletionRate float64
}

// Summarize computes dashboard counters over the full, unfiltered list.
// CompletionRate is a percentage and is 0 when the list is empty.
func Summarize(tasks []Task) Summary {
	s := Summary{Total: len(tasks)}
	for _, t := range tasks {
		if t.Status == StatusCompleted {
			s.Completed++
		} else {
			s.Pending++
		}
	}
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}
