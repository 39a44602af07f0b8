package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	apperrors "statusping/internal/errors"
	"statusping/internal/model"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

const insertMonitorSQL = `INSERT INTO "monitors" ("id","account_id","name","url","method","check_interval","timeout","is_active","is_public","current_status","consecutive_failures","last_checked_at","created_at","updated_at") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`

func TestCreateMonitor(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		input         model.Monitor
		mockSetup     func(mock sqlmock.Sqlmock, monitor model.Monitor)
		expectedError error
	}{
		{
			name: "Success",
			input: model.Monitor{
				AccountID:     "acc-1",
				Name:          "api",
				URL:           "https://api.example.com/health",
				Method:        model.MonitorMethodGet,
				CheckInterval: 60,
				Timeout:       30,
				IsActive:      true,
				CurrentStatus: model.MonitorStatusUnknown,
			},
			mockSetup: func(mock sqlmock.Sqlmock, monitor model.Monitor) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertMonitorSQL)).
					WithArgs(sqlmock.AnyArg(), monitor.AccountID, monitor.Name, monitor.URL, monitor.Method, monitor.CheckInterval, monitor.Timeout, monitor.IsActive, monitor.IsPublic, monitor.CurrentStatus, monitor.ConsecutiveFailures, nil, sqlmock.AnyArg(), sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name: "Error Monitor Name Already Exists",
			input: model.Monitor{
				AccountID: "acc-1",
				Name:      "api",
			},
			mockSetup: func(mock sqlmock.Sqlmock, monitor model.Monitor) {
				pgErr := &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "idx_monitors_account_name",
				}
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertMonitorSQL)).
					WillReturnError(pgErr)
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrMonitorNameAlreadyExists,
		},
		{
			name: "Error Generic Database Error",
			input: model.Monitor{
				AccountID: "acc-1",
				Name:      "api",
			},
			mockSetup: func(mock sqlmock.Sqlmock, monitor model.Monitor) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertMonitorSQL)).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewMonitorRepository(db)
			ctx := context.Background()

			tc.mockSetup(mock, tc.input)

			createdMonitor, err := repo.CreateMonitor(ctx, tc.input)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, createdMonitor.ID)
				assert.Equal(t, tc.input.Name, createdMonitor.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMonitorById(t *testing.T) {
	monitorID := "monitor-uuid"
	testErr := errors.New("test error")
	expectedMonitor := model.Monitor{
		ID:            monitorID,
		AccountID:     "acc-1",
		Name:          "api",
		CurrentStatus: model.MonitorStatusUp,
	}

	tests := []struct {
		name          string
		monitorID     string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:      "Success",
			monitorID: monitorID,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "account_id", "name", "current_status"}).
					AddRow(expectedMonitor.ID, expectedMonitor.AccountID, expectedMonitor.Name, expectedMonitor.CurrentStatus)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors" WHERE id = $1 ORDER BY "monitors"."id" LIMIT $2`)).
					WithArgs(monitorID, 1).
					WillReturnRows(rows)
			},
			expectedError: nil,
		},
		{
			name:      "Error Not Found",
			monitorID: "not-found-uuid",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors" WHERE id = $1 ORDER BY "monitors"."id" LIMIT $2`)).
					WithArgs("not-found-uuid", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrMonitorNotFound,
		},
		{
			name:      "Error Generic Database Error",
			monitorID: "error-uuid",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors" WHERE id = $1 ORDER BY "monitors"."id" LIMIT $2`)).
					WithArgs("error-uuid", 1).
					WillReturnError(testErr)
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewMonitorRepository(db)
			ctx := context.Background()

			tc.mockSetup(mock)

			monitor, err := repo.GetMonitorById(ctx, tc.monitorID)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, expectedMonitor.ID, monitor.ID)
				assert.Equal(t, expectedMonitor.Name, monitor.Name)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetMonitors(t *testing.T) {
	monitor1 := model.Monitor{ID: "uuid-1", AccountID: "acc-1", Name: "api", CurrentStatus: "up"}
	monitor2 := model.Monitor{ID: "uuid-2", AccountID: "acc-1", Name: "web", CurrentStatus: "down"}

	tests := []struct {
		name        string
		monitorName string
		status      string
		mockSetup   func(mock sqlmock.Sqlmock)
		wantCount   int
		wantErr     bool
	}{
		{
			name:        "Success - No filters",
			monitorName: "",
			status:      "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "account_id", "name", "current_status"}).
					AddRow(monitor1.ID, monitor1.AccountID, monitor1.Name, monitor1.CurrentStatus).
					AddRow(monitor2.ID, monitor2.AccountID, monitor2.Name, monitor2.CurrentStatus)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors" WHERE account_id = $1 ORDER BY created_at desc LIMIT $2`)).
					WithArgs("acc-1", sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
			wantCount: 2,
			wantErr:   false,
		},
		{
			name:        "Success Filter by name prefix",
			monitorName: "api",
			status:      "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "account_id", "name", "current_status"}).
					AddRow(monitor1.ID, monitor1.AccountID, monitor1.Name, monitor1.CurrentStatus)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors" WHERE account_id = $1 AND name LIKE $2 ORDER BY created_at desc LIMIT $3`)).
					WithArgs("acc-1", "api%", sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
			wantCount: 1,
			wantErr:   false,
		},
		{
			name:        "Success Filter by status",
			monitorName: "",
			status:      "down",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "account_id", "name", "current_status"}).
					AddRow(monitor2.ID, monitor2.AccountID, monitor2.Name, monitor2.CurrentStatus)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors" WHERE account_id = $1 AND current_status = $2 ORDER BY created_at desc LIMIT $3`)).
					WithArgs("acc-1", "down", sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
			wantCount: 1,
			wantErr:   false,
		},
		{
			name:        "Error DB error",
			monitorName: "",
			status:      "",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors"`)).
					WillReturnError(errors.New("db find error"))
			},
			wantCount: 0,
			wantErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewMonitorRepository(db)
			ctx := context.Background()

			tc.mockSetup(mock)

			monitors, err := repo.GetMonitors(ctx, "acc-1", tc.monitorName, tc.status, "created_at", "desc", 10, 0)

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, monitors, tc.wantCount)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetActiveMonitors(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewMonitorRepository(db)

		rows := sqlmock.NewRows([]string{"id", "account_id", "name", "is_active"}).
			AddRow("uuid-1", "acc-1", "api", true).
			AddRow("uuid-2", "acc-2", "web", true)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors" WHERE is_active = $1`)).
			WithArgs(true).
			WillReturnRows(rows)

		monitors, err := repo.GetActiveMonitors(context.Background())
		require.NoError(t, err)
		assert.Len(t, monitors, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error DB error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewMonitorRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "monitors" WHERE is_active = $1`)).
			WithArgs(true).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetActiveMonitors(context.Background())
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountMonitorsByAccount(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewMonitorRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "monitors" WHERE account_id = $1`)).
			WithArgs("acc-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		count, err := repo.CountMonitorsByAccount(context.Background(), "acc-1")
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateMonitor(t *testing.T) {
	updatedMonitor := model.Monitor{
		ID:            "update-uuid",
		Name:          "api-renamed",
		URL:           "https://api.example.com/health",
		Method:        model.MonitorMethodGet,
		CheckInterval: 120,
		Timeout:       30,
		IsActive:      false,
		IsPublic:      true,
	}
	testErr := errors.New("test error")
	updateSQL := `UPDATE "monitors" SET "check_interval"=$1,"is_active"=$2,"is_public"=$3,"method"=$4,"name"=$5,"timeout"=$6,"url"=$7,"updated_at"=$8 WHERE id = $9 RETURNING *`

	tests := []struct {
		name          string
		input         model.Monitor
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name:  "Success",
			input: updatedMonitor,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "check_interval", "is_active"}).
					AddRow(updatedMonitor.ID, updatedMonitor.Name, updatedMonitor.CheckInterval, updatedMonitor.IsActive)
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(updateSQL)).
					WithArgs(updatedMonitor.CheckInterval, updatedMonitor.IsActive, updatedMonitor.IsPublic, updatedMonitor.Method, updatedMonitor.Name, updatedMonitor.Timeout, updatedMonitor.URL, sqlmock.AnyArg(), updatedMonitor.ID).
					WillReturnRows(rows)
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name:  "Error Not Found",
			input: model.Monitor{ID: "not-found-uuid", Name: "ghost"},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(updateSQL)).
					WillReturnRows(sqlmock.NewRows([]string{}))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrMonitorNotFound,
		},
		{
			name:  "Error Duplicate Name",
			input: updatedMonitor,
			mockSetup: func(mock sqlmock.Sqlmock) {
				pgErr := &pgconn.PgError{
					Code:           "23505",
					ConstraintName: "idx_monitors_account_name",
				}
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(updateSQL)).
					WillReturnError(pgErr)
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrMonitorNameAlreadyExists,
		},
		{
			name:  "Error Generic Database Error",
			input: updatedMonitor,
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(regexp.QuoteMeta(updateSQL)).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewMonitorRepository(db)
			ctx := context.Background()

			tc.mockSetup(mock)

			result, err := repo.UpdateMonitor(ctx, tc.input)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.input.ID, result.ID)
				assert.Equal(t, tc.input.Name, result.Name)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateMonitorCheckState(t *testing.T) {
	now := time.Now().UTC()
	stateSQL := `UPDATE "monitors" SET "consecutive_failures"=$1,"current_status"=$2,"last_checked_at"=$3,"updated_at"=$4 WHERE id = $5`

	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(stateSQL)).
					WithArgs(2, model.MonitorStatusDown, now, sqlmock.AnyArg(), "monitor-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name: "Error Monitor Gone",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(stateSQL)).
					WithArgs(2, model.MonitorStatusDown, now, sqlmock.AnyArg(), "monitor-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrMonitorNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewMonitorRepository(db)

			tc.mockSetup(mock)

			err := repo.UpdateMonitorCheckState(context.Background(), "monitor-1", model.MonitorStatusDown, 2, now)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteMonitorById(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewMonitorRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "monitors" WHERE id = $1`)).
			WithArgs("monitor-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.DeleteMonitorById(context.Background(), "monitor-1")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error DB error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewMonitorRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "monitors" WHERE id = $1`)).
			WithArgs("monitor-1").
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()

		err := repo.DeleteMonitorById(context.Background(), "monitor-1")
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
