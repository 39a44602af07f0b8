package dispatcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"statusping/internal/detector"
	"statusping/internal/model"
)

type webhookChannel struct {
	client  *http.Client
	timeout time.Duration
}

type webhookPayload struct {
	Kind            string     `json:"kind"`
	MonitorID       string     `json:"monitor_id"`
	MonitorName     string     `json:"monitor_name"`
	Target          string     `json:"target"`
	IncidentID      string     `json:"incident_id"`
	Title           string     `json:"title"`
	FailureCount    int        `json:"failure_count"`
	StartedAt       time.Time  `json:"started_at"`
	ResolvedAt      *time.Time `json:"resolved_at,omitempty"`
	DowntimeSeconds *int64     `json:"downtime_seconds,omitempty"`
}

func (w *webhookChannel) Name() string {
	return model.AlertChannelWebhook
}

func (w *webhookChannel) Send(ctx context.Context, event detector.TransitionEvent, account model.Account) error {
	payload := webhookPayload{
		Kind:         event.Kind,
		MonitorID:    event.Monitor.ID,
		MonitorName:  event.Monitor.Name,
		Target:       event.Monitor.URL,
		IncidentID:   event.Incident.ID,
		Title:        event.Incident.Title,
		FailureCount: event.Incident.FailureCount,
		StartedAt:    event.Incident.StartedAt,
		ResolvedAt:   event.Incident.ResolvedAt,
	}
	if event.Incident.ResolvedAt != nil {
		seconds := int64(downtime(event.Incident).Seconds())
		payload.DowntimeSeconds = &seconds
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhookChannel.Send: %w", err)
	}

	requestCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, account.WebhookURL, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("webhookChannel.Send: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhookChannel.Send: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhookChannel.Send: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func NewWebhookChannel(timeout time.Duration) Channel {
	return &webhookChannel{
		client:  &http.Client{},
		timeout: timeout,
	}
}
