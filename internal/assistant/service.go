package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

const systemPrompt = "You are VedicAI, an expert tutor in Vedic Mathematics. " +
	"You explain concepts clearly, provide step-by-step solutions using Vedic techniques, and generate custom practice problems. " +
	"Always format your responses with clear headings, examples, and visually separated steps."

// apology is returned whenever the provider fails; assistant errors never
// propagate to the learner.
const apology = "I apologize, but I'm having trouble connecting. Please try again in a moment."

// maxHistoryTurns bounds the per-learner conversation kept in memory
// (user+assistant pairs).
const maxHistoryTurns = 10

// ContextHints carries learner context appended to the prompt so replies can
// reference where the learner is in the course.
type ContextHints struct {
	LessonsCompleted int
	SkillLevel       string
	RecentTopics     []string
}

// Service keeps a short per-learner conversation and delegates to the
// configured provider.
type Service struct {
	provider Provider

	mu      sync.Mutex
	history map[string][]Message
}

func NewService(provider Provider) *Service {
	return &Service{provider: provider, history: map[string][]Message{}}
}

// SendPrompt forwards the learner's message with context hints and returns
// the reply. Provider failures degrade to a static apology after logging;
// degraded reports that, so callers can count failures without seeing them.
func (s *Service) SendPrompt(ctx context.Context, userID, text string, hints ContextHints) (reply string, degraded bool) {
	prompt := enhancePrompt(text, hints)

	s.mu.Lock()
	hist := append([]Message(nil), s.history[userID]...)
	s.mu.Unlock()

	reply, err := s.provider.Chat(ctx, systemPrompt, hist, prompt)
	if err != nil {
		log.Printf("assistant chat for %s: %v", userID, err)
		return apology, true
	}

	s.mu.Lock()
	h := append(s.history[userID], Message{Role: RoleUser, Content: text}, Message{Role: RoleAssistant, Content: reply})
	if len(h) > 2*maxHistoryTurns {
		h = h[len(h)-2*maxHistoryTurns:]
	}
	s.history[userID] = h
	s.mu.Unlock()

	return reply, false
}

// ClearHistory drops the learner's running conversation.
func (s *Service) ClearHistory(userID string) {
	s.mu.Lock()
	delete(s.history, userID)
	s.mu.Unlock()
}

func enhancePrompt(text string, hints ContextHints) string {
	var b strings.Builder
	b.WriteString(text)
	if hints.LessonsCompleted > 0 {
		fmt.Fprintf(&b, "\n\nContext: User has completed %d lessons.", hints.LessonsCompleted)
	}
	if hints.SkillLevel != "" {
		fmt.Fprintf(&b, "\nUser skill level: %s", hints.SkillLevel)
	}
	if len(hints.RecentTopics) > 0 {
		fmt.Fprintf(&b, "\nRecent topics studied: %s", strings.Join(hints.RecentTopics, ", "))
	}
	return b.String()
}
