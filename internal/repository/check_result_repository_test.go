package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statusping/internal/model"
)

const insertCheckResultSQL = `INSERT INTO "check_results" ("id","monitor_id","status","status_code","response_time_ms","error_kind","error_message","checked_at") VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

func TestCreateCheckResult(t *testing.T) {
	statusCode := 200
	responseTime := int64(132)
	testErr := errors.New("test error")

	tests := []struct {
		name          string
		input         model.CheckResult
		mockSetup     func(mock sqlmock.Sqlmock, checkResult model.CheckResult)
		expectedError error
	}{
		{
			name: "Success",
			input: model.CheckResult{
				MonitorID:      "monitor-1",
				Status:         model.MonitorStatusUp,
				StatusCode:     &statusCode,
				ResponseTimeMs: &responseTime,
				CheckedAt:      time.Now().UTC(),
			},
			mockSetup: func(mock sqlmock.Sqlmock, checkResult model.CheckResult) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertCheckResultSQL)).
					WithArgs(sqlmock.AnyArg(), checkResult.MonitorID, checkResult.Status, checkResult.StatusCode, checkResult.ResponseTimeMs, nil, nil, checkResult.CheckedAt).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
			expectedError: nil,
		},
		{
			name: "Error Database Error",
			input: model.CheckResult{
				MonitorID: "monitor-1",
				Status:    model.MonitorStatusDown,
				CheckedAt: time.Now().UTC(),
			},
			mockSetup: func(mock sqlmock.Sqlmock, checkResult model.CheckResult) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(insertCheckResultSQL)).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewCheckResultRepository(db)

			tc.mockSetup(mock, tc.input)

			created, err := repo.CreateCheckResult(context.Background(), tc.input)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, created.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetCheckResults(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		rows := sqlmock.NewRows([]string{"id", "monitor_id", "status", "checked_at"}).
			AddRow("res-2", "monitor-1", "down", start.Add(2*time.Minute)).
			AddRow("res-1", "monitor-1", "up", start.Add(time.Minute))
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "check_results" WHERE monitor_id = $1 AND checked_at >= $2 AND checked_at < $3 ORDER BY checked_at desc LIMIT $4`)).
			WithArgs("monitor-1", start, end, 50).
			WillReturnRows(rows)

		results, err := repo.GetCheckResults(context.Background(), "monitor-1", start, end, 50, 0)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "res-2", results[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error DB error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "check_results"`)).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetCheckResults(context.Background(), "monitor-1", start, end, 50, 0)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetLatestCheckResult(t *testing.T) {
	latestSQL := `SELECT * FROM "check_results" WHERE monitor_id = $1 ORDER BY checked_at desc,"check_results"."id" LIMIT $2`

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		rows := sqlmock.NewRows([]string{"id", "monitor_id", "status"}).
			AddRow("res-9", "monitor-1", "down")
		mock.ExpectQuery(regexp.QuoteMeta(latestSQL)).
			WithArgs("monitor-1", 1).
			WillReturnRows(rows)

		result, err := repo.GetLatestCheckResult(context.Background(), "monitor-1")
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "res-9", result.ID)
		assert.Equal(t, model.MonitorStatusDown, result.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success No rows yet", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(latestSQL)).
			WithArgs("monitor-1", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "monitor_id", "status"}))

		result, err := repo.GetLatestCheckResult(context.Background(), "monitor-1")
		require.NoError(t, err)
		assert.Nil(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error DB error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(latestSQL)).
			WithArgs("monitor-1", 1).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetLatestCheckResult(context.Background(), "monitor-1")
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCountFailuresSinceLastSuccess(t *testing.T) {
	countSQL := `SELECT count(*) FROM check_results WHERE monitor_id = $1 AND checked_at > COALESCE((SELECT MAX(checked_at) FROM check_results WHERE monitor_id = $2 AND status = 'up'), 'epoch')`

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WithArgs("monitor-1", "monitor-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

		count, err := repo.CountFailuresSinceLastSuccess(context.Background(), "monitor-1")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success No prior success counts everything", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WithArgs("monitor-1", "monitor-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountFailuresSinceLastSuccess(context.Background(), "monitor-1")
		require.NoError(t, err)
		assert.Equal(t, 7, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error DB error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(countSQL)).
			WithArgs("monitor-1", "monitor-1").
			WillReturnError(errors.New("db error"))

		_, err := repo.CountFailuresSinceLastSuccess(context.Background(), "monitor-1")
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetUptimeStats(t *testing.T) {
	statsSQL := `SELECT count(*) AS total, count(*) FILTER (WHERE status = 'up') AS up FROM check_results WHERE monitor_id = $1 AND checked_at >= $2 AND checked_at < $3`
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(statsSQL)).
			WithArgs("monitor-1", start, end).
			WillReturnRows(sqlmock.NewRows([]string{"total", "up"}).AddRow(1440, 1433))

		stats, err := repo.GetUptimeStats(context.Background(), "monitor-1", start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(1440), stats.Total)
		assert.Equal(t, int64(1433), stats.Up)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success Empty window", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(statsSQL)).
			WithArgs("monitor-1", start, end).
			WillReturnRows(sqlmock.NewRows([]string{"total", "up"}).AddRow(0, 0))

		stats, err := repo.GetUptimeStats(context.Background(), "monitor-1", start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(0), stats.Total)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetDailyUptime(t *testing.T) {
	dailySQL := `SELECT date_trunc('day', checked_at) AS day, count(*) AS total, count(*) FILTER (WHERE status = 'up') AS up FROM check_results WHERE monitor_id = $1 AND checked_at >= $2 GROUP BY day ORDER BY day`
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		rows := sqlmock.NewRows([]string{"day", "total", "up"}).
			AddRow(start, 1440, 1440).
			AddRow(start.AddDate(0, 0, 1), 1440, 1380)
		mock.ExpectQuery(regexp.QuoteMeta(dailySQL)).
			WithArgs("monitor-1", start).
			WillReturnRows(rows)

		days, err := repo.GetDailyUptime(context.Background(), "monitor-1", start)
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, int64(1380), days[1].Up)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error DB error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(dailySQL)).
			WithArgs("monitor-1", start).
			WillReturnError(errors.New("db error"))

		_, err := repo.GetDailyUptime(context.Background(), "monitor-1", start)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetFleetHealthInformation(t *testing.T) {
	countsColumns := []string{"total_monitors_cnt", "up_monitors_cnt", "down_monitors_cnt", "unknown_monitors_cnt", "inactive_monitors_cnt"}
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	t.Run("Success Account scoped", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		countsSQL := `SELECT count(*) AS total_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'up') AS up_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'down') AS down_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'unknown') AS unknown_monitors_cnt, count(*) FILTER (WHERE NOT is_active) AS inactive_monitors_cnt FROM monitors WHERE account_id = $1`
		uptimeSQL := `SELECT COALESCE(avg(pct), 0) FROM (SELECT count(*) FILTER (WHERE cr.status = 'up') * 100.0 / count(*) AS pct FROM check_results cr JOIN monitors m ON m.id = cr.monitor_id WHERE cr.checked_at >= $1 AND cr.checked_at < $2 AND m.account_id = $3 GROUP BY cr.monitor_id) per_monitor`
		mock.ExpectQuery(regexp.QuoteMeta(countsSQL)).
			WithArgs("acc-1").
			WillReturnRows(sqlmock.NewRows(countsColumns).AddRow(5, 2, 1, 1, 1))
		mock.ExpectQuery(regexp.QuoteMeta(uptimeSQL)).
			WithArgs(start, end, "acc-1").
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(97.5))

		info, err := repo.GetFleetHealthInformation(context.Background(), "acc-1", start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(5), info.TotalMonitorsCnt)
		assert.Equal(t, int64(2), info.UpMonitorsCnt)
		assert.Equal(t, int64(1), info.DownMonitorsCnt)
		assert.Equal(t, int64(1), info.UnknownMonitorsCnt)
		assert.Equal(t, int64(1), info.InactiveMonitorsCnt)
		assert.Equal(t, 97.5, info.AverageUptimePercentage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success Whole fleet", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		countsSQL := `SELECT count(*) AS total_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'up') AS up_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'down') AS down_monitors_cnt, count(*) FILTER (WHERE is_active AND current_status = 'unknown') AS unknown_monitors_cnt, count(*) FILTER (WHERE NOT is_active) AS inactive_monitors_cnt FROM monitors`
		uptimeSQL := `SELECT COALESCE(avg(pct), 0) FROM (SELECT count(*) FILTER (WHERE cr.status = 'up') * 100.0 / count(*) AS pct FROM check_results cr JOIN monitors m ON m.id = cr.monitor_id WHERE cr.checked_at >= $1 AND cr.checked_at < $2 GROUP BY cr.monitor_id) per_monitor`
		mock.ExpectQuery(regexp.QuoteMeta(countsSQL)).
			WillReturnRows(sqlmock.NewRows(countsColumns).AddRow(12, 9, 0, 2, 1))
		mock.ExpectQuery(regexp.QuoteMeta(uptimeSQL)).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(99.98))

		info, err := repo.GetFleetHealthInformation(context.Background(), "", start, end)
		require.NoError(t, err)
		assert.Equal(t, int64(12), info.TotalMonitorsCnt)
		assert.Equal(t, 99.98, info.AverageUptimePercentage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error DB error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectQuery("SELECT count").
			WillReturnError(errors.New("db error"))

		_, err := repo.GetFleetHealthInformation(context.Background(), "acc-1", start, end)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteCheckResultsBefore(t *testing.T) {
	deleteSQL := `DELETE FROM check_results WHERE id IN (SELECT cr.id FROM check_results cr JOIN monitors m ON m.id = cr.monitor_id WHERE m.account_id = $1 AND cr.checked_at < $2 LIMIT $3)`
	cutoff := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
			WithArgs("acc-1", cutoff, 5000).
			WillReturnResult(sqlmock.NewResult(0, 5000))

		deleted, err := repo.DeleteCheckResultsBefore(context.Background(), "acc-1", cutoff, 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success Nothing to prune", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
			WithArgs("acc-1", cutoff, 5000).
			WillReturnResult(sqlmock.NewResult(0, 0))

		deleted, err := repo.DeleteCheckResultsBefore(context.Background(), "acc-1", cutoff, 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error DB error", func(t *testing.T) {
		db, mock := setupTestDB(t)
		repo := NewCheckResultRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(deleteSQL)).
			WithArgs("acc-1", cutoff, 5000).
			WillReturnError(errors.New("db error"))

		_, err := repo.DeleteCheckResultsBefore(context.Background(), "acc-1", cutoff, 5000)
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
