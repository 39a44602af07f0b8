package model

import "time"

const (
	ErrorKindTimeout           = "timeout"
	ErrorKindConnectionRefused = "connection_refused"
	ErrorKindDNSFailure        = "dns_failure"
	ErrorKindTLSError          = "tls_error"
	ErrorKindHTTPError         = "http_error"
	ErrorKindUnknown           = "unknown"
)

// CheckResult rows are immutable once written; only the retention pruner
// removes them.
type CheckResult struct {
	ID             string
	MonitorID      string `gorm:"index:idx_check_results_monitor_checked"`
	Status         string
	StatusCode     *int
	ResponseTimeMs *int64
	ErrorKind      *string
	ErrorMessage   *string
	CheckedAt      time.Time `gorm:"index:idx_check_results_monitor_checked"`
}
