package assistant

import "context"

// MockClient replays scripted responses, for tests and local debugging
// without an external model.
type MockClient struct {
	Responses []string
	Err       error

	calls int
	// Prompts records what the client was asked, in order.
	Prompts []string
}

func (m *MockClient) Complete(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Responses) == 0 {
		return "", nil
	}
	resp := m.Responses[m.calls%len(m.Responses)]
	m.calls++
	return resp, nil
}
