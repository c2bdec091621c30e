package model

import "testing"

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Total != 0 || s.Completed != 0 || s.Pending != 0 {
		t.Fatalf("unexpected counts: %#v", s)
	}
	if s.CompletionRate != 0 {
		t.Fatalf("completion rate for no tasks must be 0, got %v", s.CompletionRate)
	}
}

func TestSummarizeHalfDone(t *testing.T) {
	s := Summarize([]Task{
		{ID: 1, Title: "a", Status: StatusCompleted},
		{ID: 2, Title: "b", Status: StatusPending},
	})
	if s.Total != 2 || s.Completed != 1 || s.Pending != 1 {
		t.Fatalf("unexpected counts: %#v", s)
	}
	if s.CompletionRate != 50.0 {
		t.Fatalf("expected 50.0, got %v", s.CompletionRate)
	}
}

func TestSummarizeUsesFullList(t *testing.T) {
	tasks := sampleTasks()
	s := Summarize(tasks)
	if s.Total != 4 || s.Completed != 2 || s.Pending != 2 {
		t.Fatalf("unexpected counts: %#v", s)
	}
	if s.CompletionRate != 50.0 {
		t.Fatalf("expected 50.0, got %v", s.CompletionRate)
	}
}
