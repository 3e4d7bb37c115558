package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Tracker forwards analytics events to a collector. Fire-and-forget:
// implementations make exactly one attempt and never retry.
type Tracker interface {
	Track(ctx context.Context, event string, properties map[string]interface{}) error
}

// CollectorClient handles communication with the external analytics
// collector.
type CollectorClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCollectorClient(baseURL string) *CollectorClient {
	return &CollectorClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type collectorPayload struct {
	ID         string                 `json:"id"`
	Event      string                 `json:"event"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Timestamp  time.Time              `json:"timestamp"`
}

func (c *CollectorClient) Track(ctx context.Context, event string, properties map[string]interface{}) error {
	payload := collectorPayload{
		ID:         uuid.NewString(),
		Event:      event,
		Properties: properties,
		Timestamp:  time.Now().UTC(),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call collector: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("collector returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// LogTracker records events to the process log. Used when no collector
// URL is configured.
type LogTracker struct{}

func (LogTracker) Track(_ context.Context, event string, properties map[string]interface{}) error {
	log.Printf("[info] operation=track event=%s properties=%d", event, len(properties))
	return nil
}
