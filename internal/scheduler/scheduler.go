package scheduler

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"statusping/internal/config"
	"statusping/internal/detector"
	"statusping/internal/dispatcher"
	apperrors "statusping/internal/errors"
	"statusping/internal/metrics"
	"statusping/internal/model"
	"statusping/internal/prober"
	"statusping/internal/repository"
)

// Scheduler keeps exactly one timer goroutine per active monitor. Reconcile
// diffs the desired set (active monitors of active accounts) against the
// running set and starts, restarts, or stops timers to match; it runs at
// startup and after every monitor or plan mutation. Remove cancels one
// monitor's timer and waits for it, so a delete returns only once no check
// for that monitor can still be in flight.
type Scheduler interface {
	Start(ctx context.Context) error
	Stop()
	Reconcile(ctx context.Context) error
	Remove(monitorId string)
}

type entry struct {
	monitorId string
	interval  time.Duration
	cancel    context.CancelFunc
	done      chan struct{}
}

type scheduler struct {
	monitorRepo     repository.MonitorRepository
	accountRepo     repository.AccountRepository
	checkResultRepo repository.CheckResultRepository
	prober          prober.Prober
	detector        detector.Detector
	dispatcher      dispatcher.Dispatcher
	cfg             config.SchedulerConfig
	logger          *zap.Logger
	sem             *semaphore.Weighted

	mu      sync.Mutex
	entries map[string]*entry
	stopped bool
}

func (s *scheduler) Start(ctx context.Context) error {
	if err := s.Reconcile(ctx); err != nil {
		return fmt.Errorf("Scheduler.Start: %w", err)
	}
	return nil
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	stopping := make([]*entry, 0, len(s.entries))
	for _, e := range s.entries {
		stopping = append(stopping, e)
	}
	s.entries = make(map[string]*entry)
	s.mu.Unlock()

	for _, e := range stopping {
		e.cancel()
	}
	for _, e := range stopping {
		<-e.done
	}
	metrics.MonitorsScheduled.Set(0)
	s.logger.Info("Scheduler stopped", zap.Int("stopped_timers", len(stopping)))
}

func (s *scheduler) Reconcile(ctx context.Context) error {
	monitors, err := s.monitorRepo.GetActiveMonitors(ctx)
	if err != nil {
		return fmt.Errorf("Scheduler.Reconcile: %w", err)
	}
	accounts, err := s.accountRepo.GetActiveAccounts(ctx)
	if err != nil {
		return fmt.Errorf("Scheduler.Reconcile: %w", err)
	}

	plans := make(map[string]string, len(accounts))
	for _, account := range accounts {
		plans[account.ID] = account.Plan
	}

	// The effective interval is clamped to the plan minimum, so a plan
	// downgrade slows probing without rewriting monitor rows.
	desired := make(map[string]time.Duration, len(monitors))
	for _, monitor := range monitors {
		plan, ok := plans[monitor.AccountID]
		if !ok {
			continue
		}
		limits := model.LimitsForPlan(plan)
		interval := monitor.CheckInterval
		if interval < limits.MinCheckInterval {
			interval = limits.MinCheckInterval
		}
		desired[monitor.ID] = time.Duration(interval) * time.Second
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	var stopping []*entry
	for id, e := range s.entries {
		interval, keep := desired[id]
		if !keep || interval != e.interval {
			stopping = append(stopping, e)
			delete(s.entries, id)
		}
	}
	s.mu.Unlock()

	for _, e := range stopping {
		e.cancel()
		<-e.done
		if _, keep := desired[e.monitorId]; !keep {
			s.detector.Forget(e.monitorId)
		}
	}

	added := 0
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	for id, interval := range desired {
		if _, running := s.entries[id]; running {
			continue
		}
		s.entries[id] = s.startEntry(id, interval)
		added++
	}
	active := len(s.entries)
	s.mu.Unlock()

	metrics.ReconcilesTotal.Inc()
	metrics.MonitorsScheduled.Set(float64(active))
	s.logger.Info("Scheduler reconciled",
		zap.Int("active_timers", active),
		zap.Int("started", added),
		zap.Int("stopped", len(stopping)))
	return nil
}

func (s *scheduler) Remove(monitorId string) {
	s.mu.Lock()
	e, running := s.entries[monitorId]
	if running {
		delete(s.entries, monitorId)
	}
	active := len(s.entries)
	s.mu.Unlock()
	if !running {
		return
	}

	e.cancel()
	<-e.done
	s.detector.Forget(monitorId)
	metrics.MonitorsScheduled.Set(float64(active))
	s.logger.Info("Monitor timer removed", zap.String("monitor_id", monitorId))
}

func (s *scheduler) startEntry(monitorId string, interval time.Duration) *entry {
	runCtx, cancel := context.WithCancel(context.Background())
	e := &entry{
		monitorId: monitorId,
		interval:  interval,
		cancel:    cancel,
		done:      make(chan struct{}),
	}
	go s.run(runCtx, monitorId, interval, e.done)
	return e
}

func (s *scheduler) run(ctx context.Context, monitorId string, interval time.Duration, done chan struct{}) {
	defer close(done)

	// Spread first fires so a restart does not probe every monitor at once.
	if s.cfg.StartupJitter > 0 {
		jitter := time.Duration(rand.Int63n(int64(s.cfg.StartupJitter)))
		select {
		case <-time.After(jitter):
		case <-ctx.Done():
			return
		}
	}

	if !s.fire(ctx, monitorId) {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if !s.fire(ctx, monitorId) {
				return
			}
			// A check that overran its own interval leaves a tick behind;
			// drop it so the next fire waits a full interval instead of
			// running back-to-back.
			select {
			case <-ticker.C:
			default:
			}
		case <-ctx.Done():
			return
		}
	}
}

// fire runs one complete check cycle. It returns false when the timer
// goroutine should stop because the monitor no longer exists or the context
// was canceled.
func (s *scheduler) fire(ctx context.Context, monitorId string) (alive bool) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer s.sem.Release(1)

	metrics.ChecksInFlight.Inc()
	defer metrics.ChecksInFlight.Dec()

	// One monitor's panic must not take down the scheduler; the timer keeps
	// ticking and the next fire proceeds normally.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Recovered from panic during check",
				zap.String("monitor_id", monitorId),
				zap.Any("panic", r))
			alive = true
		}
	}()

	monitor, err := s.monitorRepo.GetMonitorById(ctx, monitorId)
	if err != nil {
		if errors.Is(err, apperrors.ErrMonitorNotFound) {
			s.logger.Info("Monitor gone, stopping its timer", zap.String("monitor_id", monitorId))
			s.detector.Forget(monitorId)
			return false
		}
		s.logger.Error("Failed to load monitor before check",
			zap.String("monitor_id", monitorId),
			zap.Error(err))
		return true
	}
	if !monitor.IsActive {
		return true
	}

	if err = s.detector.Track(ctx, monitor); err != nil {
		s.logger.Error("Failed to restore monitor runtime state",
			zap.String("monitor_id", monitorId),
			zap.Error(err))
		return true
	}

	outcome := s.prober.Check(ctx, monitor)
	if ctx.Err() != nil {
		// Canceled mid-probe: the monitor was removed, discard the outcome.
		return false
	}

	errorKind := "none"
	if outcome.ErrorKind != nil {
		errorKind = *outcome.ErrorKind
	}
	metrics.ChecksTotal.WithLabelValues(outcome.Status, errorKind).Inc()
	if outcome.ResponseTimeMs != nil {
		metrics.CheckDuration.Observe(float64(*outcome.ResponseTimeMs) / 1000)
	}

	stored, err := s.storeOutcome(ctx, outcome)
	if err != nil {
		metrics.CheckStoreFailuresTotal.Inc()
		s.logger.Error("Failed to store check result, skipping cycle",
			zap.String("monitor_id", monitorId),
			zap.Error(err))
		return true
	}

	event, err := s.detector.Apply(ctx, monitor, stored)
	if err != nil {
		if errors.Is(err, apperrors.ErrMonitorNotFound) {
			s.detector.Forget(monitorId)
			return false
		}
		s.logger.Error("Failed to apply check outcome",
			zap.String("monitor_id", monitorId),
			zap.Error(err))
		return true
	}
	if event != nil {
		s.dispatcher.Enqueue(*event)
	}
	return true
}

func (s *scheduler) storeOutcome(ctx context.Context, outcome model.CheckResult) (model.CheckResult, error) {
	backoff := s.cfg.StoreInitialBackoff
	var stored model.CheckResult
	var err error
	for attempt := 1; attempt <= s.cfg.StoreMaxRetries; attempt++ {
		stored, err = s.checkResultRepo.CreateCheckResult(ctx, outcome)
		if err == nil {
			return stored, nil
		}
		if attempt < s.cfg.StoreMaxRetries {
			select {
			case <-time.After(backoff):
				backoff *= 2
			case <-ctx.Done():
				return stored, fmt.Errorf("Scheduler.storeOutcome: %w", ctx.Err())
			}
		}
	}
	return stored, fmt.Errorf("Scheduler.storeOutcome: %w", err)
}

func NewScheduler(monitorRepo repository.MonitorRepository, accountRepo repository.AccountRepository, checkResultRepo repository.CheckResultRepository, checkProber prober.Prober, stateDetector detector.Detector, alertDispatcher dispatcher.Dispatcher, cfg config.SchedulerConfig, logger *zap.Logger) Scheduler {
	return &scheduler{
		monitorRepo:     monitorRepo,
		accountRepo:     accountRepo,
		checkResultRepo: checkResultRepo,
		prober:          checkProber,
		detector:        stateDetector,
		dispatcher:      alertDispatcher,
		cfg:             cfg,
		logger:          logger,
		sem:             semaphore.NewWeighted(int64(cfg.MaxConcurrentChecks)),
		entries:         make(map[string]*entry),
	}
}
