package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/lib"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type ForecastRepository interface {
	Upsert(ctx context.Context, f *models.Forecast) (*models.Forecast, error)
	GetRollup(ctx context.Context, managerID int64, period *time.Time) ([]*models.RollupRow, error)
}

type ForecastRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewForecastRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ForecastRepo {
	return &ForecastRepo{
		db:     db,
		getter: c,
	}
}

// Upsert writes the single (user_id, period_month) row, overwriting any
// previous values and refreshing updated_at. Resubmitting identical values
// leaves the stored amounts unchanged.
func (r *ForecastRepo) Upsert(ctx context.Context, f *models.Forecast) (*models.Forecast, error) {
	const op = "forecast_repo.Upsert"

	query := `
		INSERT INTO forecasts (user_id, period_month, quota, commit_amount, best_case, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id, period_month) DO UPDATE SET
			quota = EXCLUDED.quota,
			commit_amount = EXCLUDED.commit_amount,
			best_case = EXCLUDED.best_case,
			updated_at = NOW()
		RETURNING user_id, period_month, quota, commit_amount, best_case, updated_at;
	`

	var saved models.Forecast
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		GetContext(ctx, &saved, query, f.UserID, f.PeriodMonth, f.Quota, f.CommitAmount, f.BestCase)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &saved, nil
}

// GetRollup returns one row per direct report per existing forecast period.
// Reports with no submission appear once with nil numeric fields. Without a
// period filter the result mixes periods for reports with multiple historical
// submissions; callers wanting a single month pass period.
func (r *ForecastRepo) GetRollup(ctx context.Context, managerID int64, period *time.Time) ([]*models.RollupRow, error) {
	const op = "forecast_repo.GetRollup"

	query := `
		SELECT u.display_name, f.period_month, f.quota, f.commit_amount, f.best_case
		FROM users u
		LEFT JOIN forecasts f ON u.id = f.user_id
		WHERE u.manager_id = $1
		ORDER BY f.commit_amount DESC NULLS LAST, u.display_name ASC;
	`
	args := []any{managerID}

	if period != nil {
		query = `
			SELECT u.display_name, f.period_month, f.quota, f.commit_amount, f.best_case
			FROM users u
			LEFT JOIN forecasts f ON u.id = f.user_id AND f.period_month = $2
			WHERE u.manager_id = $1
			ORDER BY f.commit_amount DESC NULLS LAST, u.display_name ASC;
		`
		args = append(args, *period)
	}

	var rows []*models.RollupRow
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.RollupRow{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return rows, nil
}
