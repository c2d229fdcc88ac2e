package progress_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/vedamath/vedamath-lms/internal/db"
	"github.com/vedamath/vedamath-lms/internal/progress"
)

func openTestDB(t *testing.T) *progress.SQLStore {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "progress_test.db")
	dbh, err := db.Open(context.Background(), db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { dbh.Close() })
	return progress.NewSQLStore(dbh, "sqlite")
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := openTestDB(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "u1"); !errors.Is(err, progress.ErrNoProgress) {
		t.Fatalf("expected ErrNoProgress, got %v", err)
	}

	p, err := store.CompleteLesson(ctx, "u1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentLesson != 2 || !p.Completed(1) {
		t.Fatalf("after first completion: %+v", p)
	}

	// Skip to lesson 3, then re-complete 1; the row stays monotonic.
	if _, err := store.CompleteLesson(ctx, "u1", 3); err != nil {
		t.Fatal(err)
	}
	p, err = store.CompleteLesson(ctx, "u1", 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentLesson != 4 {
		t.Errorf("current lesson = %d, want 4", p.CurrentLesson)
	}
	if len(p.CompletedLessons) != 2 {
		t.Errorf("completed = %v, want two entries", p.CompletedLessons)
	}

	got, err := store.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if got.CurrentLesson != p.CurrentLesson || len(got.CompletedLessons) != len(p.CompletedLessons) {
		t.Errorf("Get = %+v, want %+v", got, p)
	}

	// Other learners are unaffected.
	if _, err := store.Get(ctx, "u2"); !errors.Is(err, progress.ErrNoProgress) {
		t.Errorf("u2 should have no progress, got %v", err)
	}
}
