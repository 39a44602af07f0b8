package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "statusping/internal/errors"
	"statusping/internal/model"
)

// Account rows are owned by the external account system; the engine only
// reads them and applies plan changes pushed from the billing boundary.
type AccountRepository interface {
	GetAccountById(ctx context.Context, accountId string) (model.Account, error)
	GetAccountBySlug(ctx context.Context, slug string) (model.Account, error)
	GetActiveAccounts(ctx context.Context) ([]model.Account, error)
	UpdateAccountPlan(ctx context.Context, accountId string, plan string) (model.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func (a *accountRepository) GetAccountById(ctx context.Context, accountId string) (model.Account, error) {
	var account model.Account
	result := a.db.WithContext(ctx).First(&account, "id = ?", accountId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("AccountRepository.GetAccountById: %w", apperrors.ErrAccountNotFound)
		}
		return account, fmt.Errorf("AccountRepository.GetAccountById: %w", result.Error)
	}
	return account, nil
}

func (a *accountRepository) GetAccountBySlug(ctx context.Context, slug string) (model.Account, error) {
	var account model.Account
	result := a.db.WithContext(ctx).First(&account, "slug = ?", slug)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return account, fmt.Errorf("AccountRepository.GetAccountBySlug: %w", apperrors.ErrAccountNotFound)
		}
		return account, fmt.Errorf("AccountRepository.GetAccountBySlug: %w", result.Error)
	}
	return account, nil
}

func (a *accountRepository) GetActiveAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	result := a.db.WithContext(ctx).Where("is_active = ?", true).Find(&accounts)
	if result.Error != nil {
		return nil, fmt.Errorf("AccountRepository.GetActiveAccounts: %w", result.Error)
	}
	return accounts, nil
}

func (a *accountRepository) UpdateAccountPlan(ctx context.Context, accountId string, plan string) (model.Account, error) {
	var account model.Account
	result := a.db.WithContext(ctx).Model(&account).Clauses(clause.Returning{}).Where("id = ?", accountId).Update("plan", plan)
	if result.Error != nil {
		return account, fmt.Errorf("AccountRepository.UpdateAccountPlan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return account, fmt.Errorf("AccountRepository.UpdateAccountPlan: %w", apperrors.ErrAccountNotFound)
	}
	return account, nil
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}
