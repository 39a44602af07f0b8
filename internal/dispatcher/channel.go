package dispatcher

import (
	"context"
	"fmt"
	"time"

	"statusping/internal/detector"
	"statusping/internal/model"
)

// Channel delivers one transition event over a single alert medium. Which
// channels an account may use is decided by the dispatcher from the account's
// plan, not by the channel itself.
type Channel interface {
	Name() string
	Send(ctx context.Context, event detector.TransitionEvent, account model.Account) error
}

func humanizeDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d.Seconds())
	switch {
	case total < 60:
		return fmt.Sprintf("%ds", total)
	case total < 3600:
		return fmt.Sprintf("%dm", total/60)
	case total < 86400:
		hours := total / 3600
		minutes := (total % 3600) / 60
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		days := total / 86400
		hours := (total % 86400) / 3600
		if hours == 0 {
			return fmt.Sprintf("%dd", days)
		}
		return fmt.Sprintf("%dd %dh", days, hours)
	}
}

func downtime(incident model.Incident) time.Duration {
	if incident.ResolvedAt == nil {
		return 0
	}
	return incident.ResolvedAt.Sub(incident.StartedAt)
}
