package score

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// Result is one finished game, append-only.
type Result struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Score       int    `json:"score"`
	TimeTakenMs int64  `json:"time_taken_ms"`
	CompletedAt int64  `json:"completed_at"`
}

type Store interface {
	Append(ctx context.Context, r Result) error
	// ListSince returns results with CompletedAt >= cutoff, sorted score
	// desc then time asc. cutoff 0 means all time.
	ListSince(ctx context.Context, cutoff int64) ([]Result, error)
}

// Window restricts the leaderboard to a trailing period.
type Window string

const (
	WindowAll   Window = "all"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// Cutoff converts a window to a unix-seconds lower bound; 0 for all time.
func (w Window) Cutoff(now time.Time) int64 {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7).Unix()
	case WindowMonth:
		return now.AddDate(0, -1, 0).Unix()
	default:
		return 0
	}
}

func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowAll, "":
		return WindowAll, nil
	case WindowWeek:
		return WindowWeek, nil
	case WindowMonth:
		return WindowMonth, nil
	}
	return "", fmt.Errorf("unknown window %q", s)
}

// better reports whether a beats b in leaderboard order: higher score first,
// ties broken by lower time.
func better(a, b Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.TimeTakenMs < b.TimeTakenMs
}

// Reduce keeps each learner's single best result, re-sorts the survivors by
// the same ordering, and truncates to limit.
func Reduce(results []Result, limit int) []Result {
	best := map[string]Result{}
	for _, r := range results {
		cur, ok := best[r.UserID]
		if !ok || better(r, cur) {
			best[r.UserID] = r
		}
	}
	out := make([]Result, 0, len(best))
	for _, r := range best {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return better(out[i], out[j]) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
