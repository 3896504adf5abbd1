package extraction

import (
	"context"
)

type MockLLMClient struct {
	Response    string
	Err         error
	Prompts     []string
	Temperature float32
}

func (m *MockLLMClient) Generate(ctx context.Context, prompt string, temperature float32) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	m.Temperature = temperature
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
