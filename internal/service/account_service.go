package service

import (
	"context"
	"fmt"

	"statusping/internal/model"
	"statusping/internal/repository"
	"statusping/internal/scheduler"
)

// AccountService applies plan-change events pushed from the billing boundary.
// A plan change reconciles the scheduler so new interval clamps take effect
// immediately instead of on the next monitor mutation.
type AccountService interface {
	UpdateAccountPlan(ctx context.Context, accountId string, plan string) (model.Account, error)
}

type accountService struct {
	accountRepo repository.AccountRepository
	scheduler   scheduler.Scheduler
}

func (s *accountService) UpdateAccountPlan(ctx context.Context, accountId string, plan string) (model.Account, error) {
	account, err := s.accountRepo.UpdateAccountPlan(ctx, accountId, plan)
	if err != nil {
		return account, fmt.Errorf("AccountService.UpdateAccountPlan: %w", err)
	}
	if err = s.scheduler.Reconcile(ctx); err != nil {
		return account, fmt.Errorf("AccountService.UpdateAccountPlan: %w", err)
	}
	return account, nil
}

func NewAccountService(accountRepo repository.AccountRepository, checkScheduler scheduler.Scheduler) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		scheduler:   checkScheduler,
	}
}
