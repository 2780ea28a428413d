package mlservice

import (
	"context"
	"sync"
)

// MockClient implements the Client interface for testing
type MockClient struct {
	mu sync.Mutex

	// PredictFunc allows customizing the prediction behavior
	PredictFunc func(context.Context, PredictionRequest) (*PredictionResponse, error)

	// Tracking for assertions
	PredictCalls []PredictionRequest
}

// NewMockClient creates a new mock client with default behavior
func NewMockClient() *MockClient {
	return &MockClient{
		PredictCalls: make([]PredictionRequest, 0),
	}
}

// Predict implements Client.Predict
func (m *MockClient) Predict(ctx context.Context, req PredictionRequest) (*PredictionResponse, error) {
	m.mu.Lock()
	m.PredictCalls = append(m.PredictCalls, req)
	m.mu.Unlock()

	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, req)
	}

	return &PredictionResponse{Probability: 0.5}, nil
}
