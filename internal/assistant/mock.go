package assistant

import "context"

// MockProvider returns canned replies, for tests and offline runs.
type MockProvider struct {
	Reply string
	Err   error

	// Calls records every prompt received.
	Calls []string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Reply: "mock reply"}
}

func (m *MockProvider) Chat(ctx context.Context, system string, history []Message, prompt string) (string, error) {
	m.Calls = append(m.Calls, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Reply, nil
}

func (m *MockProvider) ModelID() string { return "mock" }
