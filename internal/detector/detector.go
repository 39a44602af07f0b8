package detector

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	apperrors "statusping/internal/errors"
	"statusping/internal/metrics"
	"statusping/internal/model"
	"statusping/internal/repository"
)

// TransitionEvent is handed to the alert dispatcher when a monitor's declared
// status changes. Kind is model.AlertKindDown or model.AlertKindUp.
type TransitionEvent struct {
	Kind     string
	Monitor  model.Monitor
	Incident model.Incident
	At       time.Time
}

// RuntimeState is the in-memory view of one monitor inside the state machine.
// It is a cache over the store, rebuilt by Track after a restart.
type RuntimeState struct {
	Status               string
	ConsecutiveFailures  int
	ConsecutiveSuccesses int
	OpenIncidentID       string
}

type Detector interface {
	Track(ctx context.Context, monitor model.Monitor) error
	Forget(monitorId string)
	Apply(ctx context.Context, monitor model.Monitor, outcome model.CheckResult) (*TransitionEvent, error)
	Snapshot(monitorId string) (RuntimeState, bool)
}

type detector struct {
	monitorRepo     repository.MonitorRepository
	checkResultRepo repository.CheckResultRepository
	incidentRepo    repository.IncidentRepository
	threshold       int
	logger          *zap.Logger

	mu     sync.Mutex
	states map[string]RuntimeState
}

// Track rebuilds a monitor's runtime state from the store: an open incident
// means down; otherwise a last successful check means up; otherwise unknown.
// A monitor that is already tracked keeps its state, so a timer rebuild after
// an interval change does not reset counters.
func (d *detector) Track(ctx context.Context, monitor model.Monitor) error {
	d.mu.Lock()
	_, tracked := d.states[monitor.ID]
	d.mu.Unlock()
	if tracked {
		return nil
	}

	state := RuntimeState{Status: model.MonitorStatusUnknown}

	openIncident, err := d.incidentRepo.GetOpenIncident(ctx, monitor.ID)
	if err != nil {
		return fmt.Errorf("Detector.Track: %w", err)
	}
	if openIncident != nil {
		failures, err := d.checkResultRepo.CountFailuresSinceLastSuccess(ctx, monitor.ID)
		if err != nil {
			return fmt.Errorf("Detector.Track: %w", err)
		}
		state.Status = model.MonitorStatusDown
		state.ConsecutiveFailures = failures
		state.OpenIncidentID = openIncident.ID
	} else {
		latest, err := d.checkResultRepo.GetLatestCheckResult(ctx, monitor.ID)
		if err != nil {
			return fmt.Errorf("Detector.Track: %w", err)
		}
		if latest != nil {
			if latest.Status == model.MonitorStatusUp {
				state.Status = model.MonitorStatusUp
				state.ConsecutiveSuccesses = 1
			} else {
				failures, err := d.checkResultRepo.CountFailuresSinceLastSuccess(ctx, monitor.ID)
				if err != nil {
					return fmt.Errorf("Detector.Track: %w", err)
				}
				state.ConsecutiveFailures = failures
			}
		}
	}

	d.mu.Lock()
	if _, tracked := d.states[monitor.ID]; !tracked {
		d.states[monitor.ID] = state
	}
	d.mu.Unlock()
	return nil
}

func (d *detector) Forget(monitorId string) {
	d.mu.Lock()
	delete(d.states, monitorId)
	d.mu.Unlock()
}

func (d *detector) Snapshot(monitorId string) (RuntimeState, bool) {
	d.mu.Lock()
	state, ok := d.states[monitorId]
	d.mu.Unlock()
	return state, ok
}

// Apply feeds one probe outcome through the state machine. The scheduler
// serializes calls per monitor, so two Apply calls never race on the same
// state entry. A transition to down fires only when the failure counter
// reaches the threshold from a non-down status; a transition to up fires on
// the first success while down.
func (d *detector) Apply(ctx context.Context, monitor model.Monitor, outcome model.CheckResult) (*TransitionEvent, error) {
	d.mu.Lock()
	state, tracked := d.states[monitor.ID]
	d.mu.Unlock()
	if !tracked {
		state = RuntimeState{Status: model.MonitorStatusUnknown}
	}

	var event *TransitionEvent
	if outcome.Status == model.MonitorStatusUp {
		state.ConsecutiveSuccesses++
		state.ConsecutiveFailures = 0
		if state.Status == model.MonitorStatusDown {
			incident, err := d.resolveIncident(ctx, monitor, state.OpenIncidentID, outcome.CheckedAt)
			if err != nil {
				return nil, err
			}
			if incident != nil {
				event = &TransitionEvent{
					Kind:     model.AlertKindUp,
					Monitor:  monitor,
					Incident: *incident,
					At:       outcome.CheckedAt,
				}
			}
			state.Status = model.MonitorStatusUp
			state.OpenIncidentID = ""
		} else if state.Status != model.MonitorStatusUp {
			state.Status = model.MonitorStatusUp
		}
	} else {
		state.ConsecutiveFailures++
		state.ConsecutiveSuccesses = 0
		if state.Status != model.MonitorStatusDown && state.ConsecutiveFailures >= d.threshold {
			incident, err := d.openIncident(ctx, monitor, state.ConsecutiveFailures, outcome)
			if err != nil {
				return nil, err
			}
			event = &TransitionEvent{
				Kind:     model.AlertKindDown,
				Monitor:  monitor,
				Incident: incident,
				At:       outcome.CheckedAt,
			}
			state.Status = model.MonitorStatusDown
			state.OpenIncidentID = incident.ID
		}
	}

	// Write back only while still tracked; a Forget that raced this apply
	// must not be resurrected.
	d.mu.Lock()
	if _, tracked := d.states[monitor.ID]; tracked {
		d.states[monitor.ID] = state
	}
	d.mu.Unlock()

	err := d.monitorRepo.UpdateMonitorCheckState(ctx, monitor.ID, state.Status, state.ConsecutiveFailures, outcome.CheckedAt)
	if err != nil {
		if errors.Is(err, apperrors.ErrMonitorNotFound) {
			return nil, fmt.Errorf("Detector.Apply: %w", err)
		}
		d.logger.Warn("Failed to update monitor check state",
			zap.String("monitor_id", monitor.ID),
			zap.Error(err))
	}
	return event, nil
}

func (d *detector) openIncident(ctx context.Context, monitor model.Monitor, failures int, outcome model.CheckResult) (model.Incident, error) {
	incident, err := d.incidentRepo.CreateIncident(ctx, model.Incident{
		MonitorID:    monitor.ID,
		Title:        fmt.Sprintf("%s is down", monitor.Name),
		FailureCount: failures,
		ErrorMessage: outcome.ErrorMessage,
		StartedAt:    outcome.CheckedAt,
	})
	if err != nil {
		return model.Incident{}, fmt.Errorf("Detector.Apply: %w", err)
	}
	metrics.IncidentsOpenedTotal.Inc()
	d.logger.Info("Incident opened",
		zap.String("monitor_id", monitor.ID),
		zap.String("incident_id", incident.ID),
		zap.Int("failure_count", failures))
	return incident, nil
}

// resolveIncident closes the tracked incident and sweeps any stragglers a
// crashed run may have left open. A nil incident with nil error means the
// tracked incident was already resolved, so no up alert is owed.
func (d *detector) resolveIncident(ctx context.Context, monitor model.Monitor, incidentId string, resolvedAt time.Time) (*model.Incident, error) {
	var resolved *model.Incident
	incident, err := d.incidentRepo.ResolveIncident(ctx, incidentId, resolvedAt)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoOpenIncident) {
			return nil, fmt.Errorf("Detector.Apply: %w", err)
		}
		d.logger.Warn("Open incident was already resolved",
			zap.String("monitor_id", monitor.ID),
			zap.String("incident_id", incidentId))
	} else {
		resolved = &incident
		metrics.IncidentsResolvedTotal.Inc()
		d.logger.Info("Incident resolved",
			zap.String("monitor_id", monitor.ID),
			zap.String("incident_id", incident.ID),
			zap.Duration("downtime", resolvedAt.Sub(incident.StartedAt)))
	}
	swept, err := d.incidentRepo.ResolveOpenIncidents(ctx, monitor.ID, resolvedAt)
	if err != nil {
		return nil, fmt.Errorf("Detector.Apply: %w", err)
	}
	if swept > 0 {
		d.logger.Warn("Resolved stray open incidents",
			zap.String("monitor_id", monitor.ID),
			zap.Int64("count", swept))
	}
	return resolved, nil
}

func NewDetector(monitorRepo repository.MonitorRepository, checkResultRepo repository.CheckResultRepository, incidentRepo repository.IncidentRepository, threshold int, logger *zap.Logger) Detector {
	return &detector{
		monitorRepo:     monitorRepo,
		checkResultRepo: checkResultRepo,
		incidentRepo:    incidentRepo,
		threshold:       threshold,
		logger:          logger,
		states:          make(map[string]RuntimeState),
	}
}
