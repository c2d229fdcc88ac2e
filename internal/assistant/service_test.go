package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSendPromptAppendsHints(t *testing.T) {
	mock := NewMockProvider()
	svc := NewService(mock)

	reply, degraded := svc.SendPrompt(context.Background(), "u1", "explain nikhilam", ContextHints{
		LessonsCompleted: 3,
		SkillLevel:       "intermediate",
		RecentTopics:     []string{"subtraction", "multiplication"},
	})
	if reply != "mock reply" || degraded {
		t.Fatalf("reply = %q, degraded = %v", reply, degraded)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(mock.Calls))
	}
	prompt := mock.Calls[0]
	for _, want := range []string{
		"explain nikhilam",
		"completed 3 lessons",
		"skill level: intermediate",
		"subtraction, multiplication",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestSendPromptNoHints(t *testing.T) {
	mock := NewMockProvider()
	svc := NewService(mock)

	svc.SendPrompt(context.Background(), "u1", "hello", ContextHints{})
	if got := mock.Calls[0]; got != "hello" {
		t.Errorf("prompt = %q, want bare text when no hints", got)
	}
}

func TestSendPromptDegradesToApology(t *testing.T) {
	mock := &MockProvider{Err: errors.New("quota exceeded")}
	svc := NewService(mock)

	reply, degraded := svc.SendPrompt(context.Background(), "u1", "hi", ContextHints{})
	if reply != apology {
		t.Errorf("reply = %q, want the apology", reply)
	}
	if !degraded {
		t.Error("degraded = false on a provider failure")
	}
	// A failed exchange must not pollute the history.
	if got := len(svc.history["u1"]); got != 0 {
		t.Errorf("history has %d messages after failure, want 0", got)
	}
}

func TestHistoryBounded(t *testing.T) {
	mock := NewMockProvider()
	svc := NewService(mock)

	for i := 0; i < maxHistoryTurns+5; i++ {
		svc.SendPrompt(context.Background(), "u1", "again", ContextHints{})
	}
	if got := len(svc.history["u1"]); got != 2*maxHistoryTurns {
		t.Errorf("history has %d messages, want %d", got, 2*maxHistoryTurns)
	}
	// Histories are per learner.
	if got := len(svc.history["u2"]); got != 0 {
		t.Errorf("u2 history has %d messages, want 0", got)
	}
}

func TestClearHistory(t *testing.T) {
	svc := NewService(NewMockProvider())
	svc.SendPrompt(context.Background(), "u1", "hi", ContextHints{})
	svc.ClearHistory("u1")
	if got := len(svc.history["u1"]); got != 0 {
		t.Errorf("history has %d messages after clear, want 0", got)
	}
}

func TestNewProviderUnknown(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{Provider: "cohere"}); err == nil {
		t.Error("NewProvider accepted unknown provider")
	}
	p, err := NewProvider(context.Background(), Config{Provider: "mock"})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
