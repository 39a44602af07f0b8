package model

import "time"

// An incident is open while ResolvedAt is null. At most one open incident
// exists per monitor.
type Incident struct {
	ID           string
	MonitorID    string `gorm:"index"`
	Title        string
	FailureCount int
	ErrorMessage *string
	StartedAt    time.Time
	ResolvedAt   *time.Time
}
