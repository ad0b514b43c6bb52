package domain

import (
	"testing"
	"time"
)

func strptr(s string) *string { return &s }

func pending(id int64, priority int, due *string, created string) NextAction {
	return NextAction{Task: Task{
		ID:        id,
		Title:     "t",
		Status:    TaskStatusPending,
		Priority:  priority,
		DueDate:   due,
		CreatedAt: created,
	}}
}

func TestRankOrdering(t *testing.T) {
	a := pending(1, 3, nil, "2023-06-01T00:00:00Z")
	b := pending(2, 3, strptr("2024-01-01"), "2023-06-02T00:00:00Z")
	c := pending(3, 1, strptr("2023-01-01"), "2023-06-03T00:00:00Z")

	got := RankNextActions([]NextAction{a, b, c}, 5, false, time.Now())
	want := []int64{2, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected task %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestRankDueDateTieBreaks(t *testing.T) {
	early := pending(1, 2, strptr("2024-03-01"), "2023-06-05T00:00:00Z")
	late := pending(2, 2, strptr("2024-04-01"), "2023-06-01T00:00:00Z")
	oldNoDue := pending(3, 2, nil, "2023-01-01T00:00:00Z")
	newNoDue := pending(4, 2, nil, "2023-02-01T00:00:00Z")

	got := RankNextActions([]NextAction{newNoDue, late, oldNoDue, early}, 5, false, time.Now())
	want := []int64{1, 2, 3, 4}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected task %d, got %d", i, id, got[i].ID)
		}
	}
}

func TestRankLimit(t *testing.T) {
	var candidates []NextAction
	for i := 1; i <= 5; i++ {
		candidates = append(candidates, pending(int64(i), i, nil, "2023-06-01T00:00:00Z"))
	}
	got := RankNextActions(candidates, 1, false, time.Now())
	if len(got) != 1 {
		t.Fatalf("expected 1 task, got %d", len(got))
	}
	if got[0].ID != 5 {
		t.Fatalf("expected highest-priority task 5, got %d", got[0].ID)
	}
}

func TestRankLimitCeiling(t *testing.T) {
	var candidates []NextAction
	for i := 1; i <= 8; i++ {
		candidates = append(candidates, pending(int64(i), 1, nil, "2023-06-01T00:00:00Z"))
	}
	if got := RankNextActions(candidates, 10, false, time.Now()); len(got) != MaxNextActionLimit {
		t.Fatalf("expected ceiling of %d, got %d", MaxNextActionLimit, len(got))
	}
	if got := RankNextActions(candidates, 0, false, time.Now()); len(got) != DefaultNextActionLimit {
		t.Fatalf("expected default of %d, got %d", DefaultNextActionLimit, len(got))
	}
}

func TestRankExcludesNonPending(t *testing.T) {
	candidates := []NextAction{
		{Task: Task{ID: 1, Status: TaskStatusDone, Priority: 3}},
		{Task: Task{ID: 2, Status: TaskStatusBlocked, Priority: 3}},
		{Task: Task{ID: 3, Status: TaskStatusInProgress, Priority: 3}},
		pending(4, 1, nil, "2023-06-01T00:00:00Z"),
	}
	got := RankNextActions(candidates, 5, false, time.Now())
	if len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("expected only the pending task, got %+v", got)
	}
}

func TestRankZeroEligible(t *testing.T) {
	candidates := []NextAction{{Task: Task{ID: 1, Status: TaskStatusDone}}}
	if got := RankNextActions(candidates, 3, true, time.Now()); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestExplainHighPriorityWithDueDate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	due := now.Add(48 * time.Hour).Format(time.RFC3339)
	c := pending(1, 3, &due, "2024-01-01T00:00:00Z")
	c.DomainSlug = "housing"

	want := "High-priority task in housing due in 2 days."
	for i := 0; i < 3; i++ {
		got := RankNextActions([]NextAction{c}, 3, true, now)
		if got[0].Why != want {
			t.Fatalf("expected %q, got %q", want, got[0].Why)
		}
	}
}

func TestExplainBranches(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	soon := now.Add(72 * time.Hour).Format(time.RFC3339)
	far := now.Add(30 * 24 * time.Hour).Format(time.RFC3339)
	overdue := now.Add(-72 * time.Hour).Format(time.RFC3339)

	cases := []struct {
		name     string
		priority int
		due      *string
		slug     string
		want     string
	}{
		{"high priority no due", 3, nil, "health", "High-priority task in health."},
		{"high priority overdue", 4, &overdue, "health", "High-priority task in health due in -3 days."},
		{"due soon", 2, &soon, "housing", "Due soon (3 days) in housing."},
		{"due far", 2, &far, "housing", "Next task in housing."},
		{"no due low priority", 1, nil, "housing", "Next task in housing."},
		{"missing slug", 1, nil, "", "Next task in this domain."},
	}
	for _, tc := range cases {
		c := pending(1, tc.priority, tc.due, "2024-01-01T00:00:00Z")
		c.DomainSlug = tc.slug
		got := RankNextActions([]NextAction{c}, 3, true, now)
		if got[0].Why != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got[0].Why)
		}
	}
}

func TestExplainOmittedWhenNotRequested(t *testing.T) {
	c := pending(1, 3, nil, "2024-01-01T00:00:00Z")
	got := RankNextActions([]NextAction{c}, 3, false, time.Now())
	if got[0].Why != "" {
		t.Fatalf("expected no explanation, got %q", got[0].Why)
	}
}

func TestDaysUntilDueDateOnly(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	days, ok := daysUntilDue(strptr("2024-05-08"), now)
	if !ok || days != 7 {
		t.Fatalf("expected 7 days, got %d (ok=%v)", days, ok)
	}
	if _, ok := daysUntilDue(strptr("not-a-date"), now); ok {
		t.Fatalf("expected unparsable date to report no due date")
	}
}
