package forecast

import (
	"context"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ForecastWriter
type ForecastWriter interface {
	Upsert(ctx context.Context, f *models.Forecast) (*models.Forecast, error)
}

type ForecastService struct {
	forecasts ForecastWriter
}

func NewForecastService(forecasts ForecastWriter) *ForecastService {
	return &ForecastService{
		forecasts: forecasts,
	}
}

// NormalizePeriod maps any date to the first day of its calendar month.
func NormalizePeriod(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// Submit writes the caller's numbers for the period's month. The write is a
// pure upsert on (user_id, period_month); resubmitting overwrites in place.
// Amounts are stored as given, negative or zero included.
func (s *ForecastService) Submit(ctx context.Context, userID int64, period time.Time, quota, commit, bestCase float64) (*models.Forecast, error) {
	return s.forecasts.Upsert(ctx, &models.Forecast{
		UserID:       userID,
		PeriodMonth:  NormalizePeriod(period),
		Quota:        quota,
		CommitAmount: commit,
		BestCase:     bestCase,
	})
}
