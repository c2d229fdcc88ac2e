package game

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"
)

func newTestManager(t *testing.T) (*Manager, *time.Time) {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(time.Hour)
	m.now = func() time.Time { return now }
	m.newRand = func() *rand.Rand { return rand.New(rand.NewSource(42)) }
	return m, &now
}

func TestStartGeneratesFixedLengthSession(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Start("u1")
	if s.State != StatePlaying {
		t.Errorf("state = %q, want playing", s.State)
	}
	if len(s.Questions) != TotalQuestions {
		t.Errorf("got %d questions, want %d", len(s.Questions), TotalQuestions)
	}
	if s.CurrentIndex != 0 || s.Score != 0 {
		t.Errorf("fresh session index=%d score=%d", s.CurrentIndex, s.Score)
	}
}

func TestWrongAnswerStillAdvances(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Start("u1")

	res, err := m.Submit(s.ID, "u1", "definitely wrong")
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct {
		t.Fatal("nonsense answer marked correct")
	}
	if res.NextIndex != 1 {
		t.Errorf("next index = %d, want 1 (wrong answers must advance)", res.NextIndex)
	}
	if res.NextDelayMs != 1500 {
		t.Errorf("delay = %d, want 1500 for a wrong answer", res.NextDelayMs)
	}
	if res.Score != 0 {
		t.Errorf("score = %d, want 0", res.Score)
	}
}

func TestCorrectAnswerScoresWithShortDelay(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Start("u1")

	res, err := m.Submit(s.ID, "u1", " "+s.Questions[0].Answer+" ") // trimmed
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct {
		t.Fatal("exact answer with surrounding spaces should be correct")
	}
	if res.NextDelayMs != 500 {
		t.Errorf("delay = %d, want 500 for a correct answer", res.NextDelayMs)
	}
	if res.Score != 1 {
		t.Errorf("score = %d, want 1", res.Score)
	}
}

func TestFifthSubmissionCompletes(t *testing.T) {
	m, now := newTestManager(t)
	s := m.Start("u1")

	*now = now.Add(90 * time.Second)
	var last SubmitResult
	for i := 0; i < TotalQuestions; i++ {
		res, err := m.Submit(s.ID, "u1", s.Questions[i].Answer)
		if err != nil {
			t.Fatal(err)
		}
		if want := i == TotalQuestions-1; res.Completed != want {
			t.Errorf("submission %d: completed = %v, want %v", i+1, res.Completed, want)
		}
		last = res
	}
	if last.Score != TotalQuestions {
		t.Errorf("final score = %d, want %d", last.Score, TotalQuestions)
	}
	if last.FinalTimeMs != 90_000 {
		t.Errorf("final time = %dms, want 90000", last.FinalTimeMs)
	}

	got, err := m.Get(s.ID, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateCompleted || got.FinalTimeMs != 90_000 {
		t.Errorf("stored session: state=%q final=%d", got.State, got.FinalTimeMs)
	}

	if _, err := m.Submit(s.ID, "u1", "1"); !errors.Is(err, ErrSessionOver) {
		t.Errorf("submit after completion: err = %v, want ErrSessionOver", err)
	}
}

func TestStartAndGetReturnIsolatedCopies(t *testing.T) {
	m, _ := newTestManager(t)
	s := m.Start("u1")

	before, err := m.Get(s.ID, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.Submit(s.ID, "u1", "x"); err != nil {
		t.Fatal(err)
	}
	if s.CurrentIndex != 0 || before.CurrentIndex != 0 {
		t.Errorf("earlier snapshots mutated: start=%d get=%d", s.CurrentIndex, before.CurrentIndex)
	}
	after, err := m.Get(s.ID, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if after.CurrentIndex != 1 {
		t.Errorf("fresh snapshot index = %d, want 1", after.CurrentIndex)
	}
}

// Session polling encodes a snapshot while submissions advance the live state.
func TestConcurrentReadAndSubmit(t *testing.T) {
	m, _ := newTestManager(t)
	for round := 0; round < 50; round++ {
		s := m.Start("u1")
		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < 50; i++ {
				got, err := m.Get(s.ID, "u1")
				if err != nil {
					t.Error(err)
					return
				}
				if _, err := json.Marshal(got); err != nil {
					t.Error(err)
					return
				}
			}
		}()
		for i := 0; i < TotalQuestions; i++ {
			if _, err := m.Submit(s.ID, "u1", "x"); err != nil {
				t.Fatal(err)
			}
		}
		<-done
	}
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	m, now := newTestManager(t)
	s := m.Start("u1")

	*now = now.Add(2 * time.Hour)
	if n := m.Sweep(); n != 1 {
		t.Fatalf("swept %d sessions, want 1", n)
	}
	if _, err := m.Get(s.ID, "u1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected evicted session, got %v", err)
	}
}
