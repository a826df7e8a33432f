// Package intentmodel is the Intent Classifier Oracle client. It talks
// to the inference server hosting the fine-tuned multilingual intent
// model over HTTP. The model itself is opaque to this service: only the
// (label, confidence) contract matters.
package intentmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"multilingual-tool-router/internal/model"
)

// Client is the intent inference server client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ IClassifier = (*Client)(nil)

// New creates a new classifier client for the given inference server URL.
func New(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("intent model URL is required")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}, nil
}

// Predict classifies the given text into one of the fixed intent labels.
func (c *Client) Predict(ctx context.Context, text string) (model.Intent, float64, error) {
	reqBody := PredictRequest{Text: text}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/predict", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(bodyBytes))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", 0, fmt.Errorf("failed to call intent model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if jsonErr := json.NewDecoder(resp.Body).Decode(&errResp); jsonErr == nil && errResp.Error != "" {
			return "", 0, fmt.Errorf("intent model error (%d): %s", resp.StatusCode, errResp.Error)
		}
		return "", 0, fmt.Errorf("intent model error: %d", resp.StatusCode)
	}

	var predictResp PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predictResp); err != nil {
		return "", 0, fmt.Errorf("failed to decode response: %w", err)
	}

	intent := model.Intent(predictResp.Intent)
	if !intent.Valid() {
		return "", 0, fmt.Errorf("intent model returned unknown label %q", predictResp.Intent)
	}
	if predictResp.Confidence < 0 || predictResp.Confidence > 1 {
		return "", 0, fmt.Errorf("intent model returned confidence %v out of [0, 1]", predictResp.Confidence)
	}

	return intent, predictResp.Confidence, nil
}
