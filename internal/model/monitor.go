package model

import "time"

const (
	MonitorStatusUnknown = "unknown"
	MonitorStatusUp      = "up"
	MonitorStatusDown    = "down"
)

const (
	MonitorMethodGet  = "GET"
	MonitorMethodHead = "HEAD"
)

// CurrentStatus, ConsecutiveFailures and LastCheckedAt are scheduler
// bookkeeping; within a run the detector's in-memory state is authoritative
// and these columns are rebuilt from check results and incidents on startup.
type Monitor struct {
	ID                  string
	AccountID           string `gorm:"uniqueIndex:idx_monitors_account_name"`
	Name                string `gorm:"uniqueIndex:idx_monitors_account_name"`
	URL                 string
	Method              string
	CheckInterval       int //seconds
	Timeout             int //seconds
	IsActive            bool
	IsPublic            bool
	CurrentStatus       string
	ConsecutiveFailures int
	LastCheckedAt       *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
