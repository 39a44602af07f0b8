package apperrors

import (
	"errors"
)

var (
	ErrMonitorNotFound          = errors.New("monitor not found")
	ErrMonitorNameAlreadyExists = errors.New("monitor name already exists")
	ErrAccountNotFound          = errors.New("account not found")
	ErrNoOpenIncident           = errors.New("no open incident for monitor")
	ErrIntervalBelowPlanMinimum = errors.New("check interval is below plan minimum")
	ErrMonitorLimitReached      = errors.New("monitor limit reached for plan")
	ErrInvalidToken             = errors.New("invalid token")
)
