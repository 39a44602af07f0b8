package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"statusping/internal/detector"
	"statusping/internal/model"
	"statusping/pkg/infra"
)

// streamChannel publishes transition events to kafka for accounts that
// integrate their own consumers. Messages are keyed by monitor id so one
// monitor's transitions stay ordered within a partition.
type streamChannel struct {
	writer infra.KafkaWriter
}

func (s *streamChannel) Name() string {
	return model.AlertChannelStream
}

func (s *streamChannel) Send(ctx context.Context, event detector.TransitionEvent, account model.Account) error {
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
		return fmt.Errorf("streamChannel.Send: %w", err)
	}
	err = s.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Monitor.ID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("streamChannel.Send: %w", err)
	}
	return nil
}

func NewStreamChannel(writer infra.KafkaWriter) Channel {
	return &streamChannel{
		writer: writer,
	}
}
