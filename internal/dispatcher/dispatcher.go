package dispatcher

import (
	"context"
	"time"

	"go.uber.org/zap"

	"statusping/internal/config"
	"statusping/internal/detector"
	"statusping/internal/metrics"
	"statusping/internal/model"
	"statusping/internal/repository"
)

// Dispatcher consumes transition events from a bounded queue and fans each
// one out to the alert channels the owning account's plan allows. Delivery is
// at-least-once per (incident, kind, channel): the delivery record table makes
// redelivery after a restart idempotent, and a full queue drops events rather
// than blocking the scheduler.
type Dispatcher interface {
	Start()
	Stop()
	Enqueue(event detector.TransitionEvent)
}

type dispatcher struct {
	accountRepo  repository.AccountRepository
	deliveryRepo repository.AlertDeliveryRepository
	channels     map[string]Channel
	cfg          config.DispatcherConfig
	logger       *zap.Logger

	events chan detector.TransitionEvent
	stop   chan struct{}
	done   chan struct{}
}

func (d *dispatcher) Start() {
	go d.run()
}

// Stop drains events already queued before returning, so a graceful shutdown
// does not lose alerts that were enqueued but not yet delivered.
func (d *dispatcher) Stop() {
	close(d.stop)
	<-d.done
}

func (d *dispatcher) Enqueue(event detector.TransitionEvent) {
	select {
	case d.events <- event:
	default:
		metrics.AlertsDroppedTotal.Inc()
		d.logger.Error("Alert queue full, dropping transition event",
			zap.String("monitor_id", event.Monitor.ID),
			zap.String("incident_id", event.Incident.ID),
			zap.String("kind", event.Kind))
	}
}

func (d *dispatcher) run() {
	defer close(d.done)
	for {
		select {
		case event := <-d.events:
			d.dispatch(event)
		case <-d.stop:
			for {
				select {
				case event := <-d.events:
					d.dispatch(event)
				default:
					return
				}
			}
		}
	}
}

func (d *dispatcher) dispatch(event detector.TransitionEvent) {
	ctx := context.Background()
	account, err := d.accountRepo.GetAccountById(ctx, event.Monitor.AccountID)
	if err != nil {
		d.logger.Error("Failed to load account for alert",
			zap.String("monitor_id", event.Monitor.ID),
			zap.String("account_id", event.Monitor.AccountID),
			zap.Error(err))
		return
	}

	limits := model.LimitsForPlan(account.Plan)
	for _, channelName := range limits.AlertChannels {
		channel, ok := d.channels[channelName]
		if !ok {
			continue
		}
		if channelName == model.AlertChannelWebhook && account.WebhookURL == "" {
			continue
		}

		exists, err := d.deliveryRepo.AlertDeliveryExists(ctx, event.Incident.ID, event.Kind, channelName)
		if err != nil {
			d.logger.Warn("Failed to check alert delivery record, sending anyway",
				zap.String("incident_id", event.Incident.ID),
				zap.String("channel", channelName),
				zap.Error(err))
		} else if exists {
			continue
		}

		sendErr := d.sendWithRetry(ctx, channel, event, account)
		d.recordDelivery(ctx, event, channelName, sendErr)
	}
}

func (d *dispatcher) sendWithRetry(ctx context.Context, channel Channel, event detector.TransitionEvent, account model.Account) error {
	backoff := d.cfg.InitialBackoff
	var err error
	for attempt := 1; attempt <= d.cfg.MaxRetries; attempt++ {
		err = channel.Send(ctx, event, account)
		if err == nil {
			return nil
		}
		if attempt < d.cfg.MaxRetries {
			d.logger.Warn("Alert delivery failed, retrying",
				zap.String("incident_id", event.Incident.ID),
				zap.String("channel", channel.Name()),
				zap.Int("attempt", attempt),
				zap.Error(err))
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return err
}

func (d *dispatcher) recordDelivery(ctx context.Context, event detector.TransitionEvent, channelName string, sendErr error) {
	delivery := model.AlertDelivery{
		IncidentID:   event.Incident.ID,
		MonitorID:    event.Monitor.ID,
		Kind:         event.Kind,
		Channel:      channelName,
		Delivered:    sendErr == nil,
		DispatchedAt: time.Now().UTC(),
	}
	if sendErr != nil {
		errMsg := sendErr.Error()
		delivery.Error = &errMsg
		metrics.AlertsDeliveredTotal.WithLabelValues(channelName, "failure").Inc()
		d.logger.Error("Alert delivery exhausted retries",
			zap.String("incident_id", event.Incident.ID),
			zap.String("monitor_id", event.Monitor.ID),
			zap.String("channel", channelName),
			zap.Error(sendErr))
	} else {
		metrics.AlertsDeliveredTotal.WithLabelValues(channelName, "success").Inc()
		d.logger.Info("Alert delivered",
			zap.String("incident_id", event.Incident.ID),
			zap.String("monitor_id", event.Monitor.ID),
			zap.String("channel", channelName),
			zap.String("kind", event.Kind))
	}
	if _, err := d.deliveryRepo.CreateAlertDelivery(ctx, delivery); err != nil {
		d.logger.Error("Failed to record alert delivery",
			zap.String("incident_id", event.Incident.ID),
			zap.String("channel", channelName),
			zap.Error(err))
	}
}

func NewDispatcher(accountRepo repository.AccountRepository, deliveryRepo repository.AlertDeliveryRepository, channels []Channel, cfg config.DispatcherConfig, logger *zap.Logger) Dispatcher {
	channelMap := make(map[string]Channel, len(channels))
	for _, channel := range channels {
		channelMap[channel.Name()] = channel
	}
	return &dispatcher{
		accountRepo:  accountRepo,
		deliveryRepo: deliveryRepo,
		channels:     channelMap,
		cfg:          cfg,
		logger:       logger,
		events:       make(chan detector.TransitionEvent, cfg.QueueSize),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}
