package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	apperrors "statusping/internal/errors"
	mockrepository "statusping/internal/mocks/repository"
	"statusping/internal/model"
)

func TestAccountService_UpdateAccountPlan(t *testing.T) {
	ctx := context.Background()
	upgraded := model.Account{
		ID:       "acc-1",
		Name:     "Acme",
		Slug:     "acme",
		Email:    "ops@acme.dev",
		Plan:     model.PlanBusiness,
		IsActive: true,
	}

	testCases := []struct {
		name           string
		setupMocks     func(accountRepo *mockrepository.MockAccountRepository)
		reconcileErr   error
		wantErr        bool
		wantReconciles int
	}{
		{
			name: "Success Plan updated and timers reconciled",
			setupMocks: func(accountRepo *mockrepository.MockAccountRepository) {
				accountRepo.EXPECT().UpdateAccountPlan(ctx, "acc-1", model.PlanBusiness).Return(upgraded, nil)
			},
			wantReconciles: 1,
		},
		{
			name: "Error Account not found",
			setupMocks: func(accountRepo *mockrepository.MockAccountRepository) {
				accountRepo.EXPECT().UpdateAccountPlan(ctx, "acc-1", model.PlanBusiness).
					Return(model.Account{}, apperrors.ErrAccountNotFound)
			},
			wantErr: true,
		},
		{
			name: "Error Reconcile fails after the update",
			setupMocks: func(accountRepo *mockrepository.MockAccountRepository) {
				accountRepo.EXPECT().UpdateAccountPlan(ctx, "acc-1", model.PlanBusiness).Return(upgraded, nil)
			},
			reconcileErr:   errors.New("reconcile failed"),
			wantErr:        true,
			wantReconciles: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockAccountRepo := mockrepository.NewMockAccountRepository(ctrl)
			tc.setupMocks(mockAccountRepo)
			checkScheduler := &fakeScheduler{reconcileErr: tc.reconcileErr}

			accountService := NewAccountService(mockAccountRepo, checkScheduler)

			_, err := accountService.UpdateAccountPlan(ctx, "acc-1", model.PlanBusiness)

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantReconciles, checkScheduler.reconciles)
		})
	}
}
