package score_test

import (
	"context"
	"testing"
	"time"

	"github.com/vedamath/vedamath-lms/internal/score"
)

func TestReduceKeepsBestPerLearner(t *testing.T) {
	results := []score.Result{
		{UserID: "u1", Score: 3, TimeTakenMs: 100},
		{UserID: "u1", Score: 5, TimeTakenMs: 200},
		{UserID: "u2", Score: 5, TimeTakenMs: 150},
	}
	got := score.Reduce(results, 100)
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	// u2 ranks first on the time tie-break; u1's best-by-score survives even
	// though their 3/100 run was faster.
	if got[0].UserID != "u2" || got[0].Score != 5 || got[0].TimeTakenMs != 150 {
		t.Errorf("first entry = %+v, want u2 5/150", got[0])
	}
	if got[1].UserID != "u1" || got[1].Score != 5 || got[1].TimeTakenMs != 200 {
		t.Errorf("second entry = %+v, want u1 5/200", got[1])
	}
}

func TestReduceTruncates(t *testing.T) {
	var results []score.Result
	for i := 0; i < 150; i++ {
		results = append(results, score.Result{
			UserID:      string(rune('a'+i%26)) + string(rune('a'+i/26)),
			Score:       i % 6,
			TimeTakenMs: int64(1000 + i),
		})
	}
	got := score.Reduce(results, 100)
	if len(got) > 100 {
		t.Errorf("got %d entries, want at most 100", len(got))
	}
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		if cur.Score > prev.Score || (cur.Score == prev.Score && cur.TimeTakenMs < prev.TimeTakenMs) {
			t.Fatalf("ordering violated at %d: %+v before %+v", i, prev, cur)
		}
	}
}

func TestWindowCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	if c := score.WindowAll.Cutoff(now); c != 0 {
		t.Errorf("all-time cutoff = %d, want 0", c)
	}
	if c := score.WindowWeek.Cutoff(now); c != now.AddDate(0, 0, -7).Unix() {
		t.Errorf("week cutoff = %d", c)
	}
	if c := score.WindowMonth.Cutoff(now); c != now.AddDate(0, -1, 0).Unix() {
		t.Errorf("month cutoff = %d", c)
	}
}

func TestParseWindow(t *testing.T) {
	for s, want := range map[string]score.Window{
		"":      score.WindowAll,
		"all":   score.WindowAll,
		"week":  score.WindowWeek,
		"month": score.WindowMonth,
	} {
		got, err := score.ParseWindow(s)
		if err != nil || got != want {
			t.Errorf("ParseWindow(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := score.ParseWindow("year"); err == nil {
		t.Error("ParseWindow accepted unknown window")
	}
}

func TestMemoryStoreWindowFilter(t *testing.T) {
	store := score.NewInMemoryStore()
	ctx := context.Background()
	now := time.Now()

	old := score.Result{ID: "1", UserID: "u1", Score: 5, TimeTakenMs: 100, CompletedAt: now.AddDate(0, 0, -30).Unix()}
	recent := score.Result{ID: "2", UserID: "u2", Score: 4, TimeTakenMs: 200, CompletedAt: now.Unix()}
	for _, r := range []score.Result{old, recent} {
		if err := store.Append(ctx, r); err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.ListSince(ctx, score.WindowWeek.Cutoff(now))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("week window = %+v, want only the recent result", got)
	}

	got, err = store.ListSince(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("all-time window returned %d rows, want 2", len(got))
	}
}
