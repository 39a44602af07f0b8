package pruner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"statusping/internal/config"
	"statusping/internal/metrics"
	"statusping/internal/model"
	"statusping/internal/repository"
)

// Pruner enforces per-plan retention by deleting check results older than the
// account's retention window. Prune is invoked from a cron schedule and
// deletes in bounded batches so a large backlog never holds long row locks.
type Pruner interface {
	Prune(ctx context.Context) error
}

type pruner struct {
	accountRepo     repository.AccountRepository
	checkResultRepo repository.CheckResultRepository
	cfg             config.PrunerConfig
	logger          *zap.Logger
}

func (p *pruner) Prune(ctx context.Context) error {
	accounts, err := p.accountRepo.GetActiveAccounts(ctx)
	if err != nil {
		return fmt.Errorf("Pruner.Prune: %w", err)
	}

	var total int64
	for _, account := range accounts {
		deleted, err := p.pruneAccount(ctx, account)
		total += deleted
		if err != nil {
			p.logger.Error("Failed to prune check results for account",
				zap.String("account_id", account.ID),
				zap.Error(err))
			continue
		}
	}
	if total > 0 {
		p.logger.Info("Retention pruning finished",
			zap.Int64("deleted_results", total),
			zap.Int("accounts", len(accounts)))
	}
	return nil
}

func (p *pruner) pruneAccount(ctx context.Context, account model.Account) (int64, error) {
	cutoff := time.Now().UTC().Add(-model.LimitsForPlan(account.Plan).Retention)
	var total int64
	for {
		deleted, err := p.checkResultRepo.DeleteCheckResultsBefore(ctx, account.ID, cutoff, p.cfg.BatchSize)
		if err != nil {
			return total, fmt.Errorf("Pruner.pruneAccount: %w", err)
		}
		total += deleted
		metrics.PrunedResultsTotal.Add(float64(deleted))
		if deleted < int64(p.cfg.BatchSize) {
			return total, nil
		}
		if err = ctx.Err(); err != nil {
			return total, fmt.Errorf("Pruner.pruneAccount: %w", err)
		}
	}
}

func NewPruner(accountRepo repository.AccountRepository, checkResultRepo repository.CheckResultRepository, cfg config.PrunerConfig, logger *zap.Logger) Pruner {
	return &pruner{
		accountRepo:     accountRepo,
		checkResultRepo: checkResultRepo,
		cfg:             cfg,
		logger:          logger,
	}
}
