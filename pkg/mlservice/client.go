package mlservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client interface for the ML risk-scoring service
type Client interface {
	// Predict sends survey features and returns the scored probability
	Predict(ctx context.Context, req PredictionRequest) (*PredictionResponse, error)
}

// PredictionRequest carries the normalized survey fields plus computed BMI
type PredictionRequest struct {
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Cycle         float64 `json:"cycle"`
	HairGrowth    bool    `json:"hairGrowth"`
	SkinDarkening bool    `json:"skinDarkening"`
	HairLoss      bool    `json:"hairLoss"`
	Pimples       bool    `json:"pimples"`
	BMI           float64 `json:"bmi"`
}

// PredictionResponse is the scorer's reply
type PredictionResponse struct {
	Probability float64 `json:"probability"`
}

// HTTPClient implements the Client interface using HTTP requests
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Ensure HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)

// Config holds configuration for the ML service client
type Config struct {
	BaseURL string        // Default: http://localhost:5001
	Timeout time.Duration // Default: 10s
}

// NewHTTPClient creates a new ML service HTTP client
func NewHTTPClient(config Config) *HTTPClient {
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:5001"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	return &HTTPClient{
		baseURL: config.BaseURL,
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
	}
}

// Predict implements Client.Predict. Any non-success status, unreachable
// host, or malformed body is a scoring failure; there is no retry and no
// local fallback score.
func (c *HTTPClient) Predict(ctx context.Context, req PredictionRequest) (*PredictionResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach ML service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ML service returned status %d: %s", resp.StatusCode, string(body))
	}

	var prediction PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("failed to decode ML service response: %w", err)
	}

	if prediction.Probability < 0 || prediction.Probability > 1 {
		return nil, fmt.Errorf("ML service returned probability out of range: %v", prediction.Probability)
	}

	return &prediction, nil
}
