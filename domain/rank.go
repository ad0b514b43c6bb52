package domain

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Next-action limits enforced by the API.
const (
	DefaultNextActionLimit = 3
	MaxNextActionLimit     = 5
)

// NextAction is a pending task annotated with its domain slug and, when
// requested, a short explanation of why it ranks where it does.
type NextAction struct {
	Task
	DomainSlug string `json:"domain_slug,omitempty"`
	Why        string `json:"why,omitempty"`
}

// ClampNextActionLimit normalizes a caller-supplied limit: non-positive
// values fall back to the default, anything above the ceiling is capped.
func ClampNextActionLimit(n int) int {
	if n <= 0 {
		return DefaultNextActionLimit
	}
	if n > MaxNextActionLimit {
		return MaxNextActionLimit
	}
	return n
}

// RankNextActions orders the candidate tasks by actionability and returns at
// most limit of them. Only pending tasks are eligible. The sort key is
// priority descending, then presence of a due date, then due date ascending,
// then creation time ascending. The function never mutates task state; now is
// injected so explanations are deterministic.
func RankNextActions(candidates []NextAction, limit int, includeWhy bool, now time.Time) []NextAction {
	ranked := make([]NextAction, 0, len(candidates))
	for _, c := range candidates {
		if c.Status == TaskStatusPending {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return rankLess(ranked[i], ranked[j])
	})
	limit = ClampNextActionLimit(limit)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if includeWhy {
		for i := range ranked {
			ranked[i].Why = explain(ranked[i], now)
		}
	}
	return ranked
}

func rankLess(a, b NextAction) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	aDue := a.DueDate != nil && *a.DueDate != ""
	bDue := b.DueDate != nil && *b.DueDate != ""
	if aDue != bDue {
		return aDue
	}
	// RFC 3339 and YYYY-MM-DD both sort lexicographically.
	if aDue && *a.DueDate != *b.DueDate {
		return *a.DueDate < *b.DueDate
	}
	return a.CreatedAt < b.CreatedAt
}

// explain renders the justification string for a ranked task. Exactly one
// branch fires; negative day counts pass through unclamped.
func explain(t NextAction, now time.Time) string {
	slug := t.DomainSlug
	if slug == "" {
		slug = "this domain"
	}
	days, hasDue := daysUntilDue(t.DueDate, now)
	switch {
	case t.Priority >= 3:
		if hasDue {
			return fmt.Sprintf("High-priority task in %s due in %d days.", slug, days)
		}
		return fmt.Sprintf("High-priority task in %s.", slug)
	case hasDue && days <= 7:
		return fmt.Sprintf("Due soon (%d days) in %s.", days, slug)
	default:
		return fmt.Sprintf("Next task in %s.", slug)
	}
}

// daysUntilDue returns floor((due - now) / 24h). A missing or unparsable due
// date reports false.
func daysUntilDue(due *string, now time.Time) (int, bool) {
	if due == nil || *due == "" {
		return 0, false
	}
	t, err := time.Parse(time.RFC3339, *due)
	if err != nil {
		t, err = time.Parse("2006-01-02", *due)
		if err != nil {
			return 0, false
		}
	}
	return int(math.Floor(t.Sub(now).Hours() / 24)), true
}
