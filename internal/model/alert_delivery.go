package model

import "time"

const (
	AlertKindDown = "down"
	AlertKindUp   = "up"
)

const (
	AlertChannelEmail   = "email"
	AlertChannelWebhook = "webhook"
	AlertChannelStream  = "stream"
)

// AlertDelivery records one attempt outcome per (incident, kind, channel);
// the unique index on that triple is what makes alerting idempotent across
// retries and restarts.
type AlertDelivery struct {
	ID           string
	IncidentID   string `gorm:"uniqueIndex:idx_incident_kind_channel"`
	MonitorID    string
	Kind         string `gorm:"uniqueIndex:idx_incident_kind_channel"`
	Channel      string `gorm:"uniqueIndex:idx_incident_kind_channel"`
	Delivered    bool
	Error        *string
	DispatchedAt time.Time
}
