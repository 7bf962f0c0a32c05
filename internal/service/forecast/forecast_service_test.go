package forecast_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/models"
	f "github.com/Alubalulu/sales-forecast-app/internal/service/forecast"
	"github.com/Alubalulu/sales-forecast-app/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNormalizePeriod(t *testing.T) {
	mid := time.Date(2024, time.March, 17, 13, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), f.NormalizePeriod(mid))

	first := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, first, f.NormalizePeriod(first))
}

func TestForecastService_Submit_NormalizesPeriod(t *testing.T) {
	ctx := context.Background()

	mockWriter := mocks.NewForecastWriter(t)

	saved := &models.Forecast{
		UserID:       1,
		PeriodMonth:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		Quota:        1000,
		CommitAmount: 600,
		BestCase:     750,
	}

	mockWriter.On("Upsert", ctx, mock.MatchedBy(func(in *models.Forecast) bool {
		return in.UserID == 1 &&
			in.PeriodMonth.Equal(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
			in.Quota == 1000 && in.CommitAmount == 600 && in.BestCase == 750
	})).Return(saved, nil).Once()

	service := f.NewForecastService(mockWriter)
	resp, err := service.Submit(ctx, 1, time.Date(2024, time.March, 17, 0, 0, 0, 0, time.UTC), 1000, 600, 750)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, saved.PeriodMonth, resp.PeriodMonth)
}

func TestForecastService_Submit_ResubmitSamePeriod(t *testing.T) {
	ctx := context.Background()

	mockWriter := mocks.NewForecastWriter(t)

	period := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	mockWriter.On("Upsert", ctx, mock.MatchedBy(func(in *models.Forecast) bool {
		return in.CommitAmount == 600
	})).Return(&models.Forecast{UserID: 1, PeriodMonth: period, CommitAmount: 600}, nil).Once()
	mockWriter.On("Upsert", ctx, mock.MatchedBy(func(in *models.Forecast) bool {
		return in.CommitAmount == 650
	})).Return(&models.Forecast{UserID: 1, PeriodMonth: period, CommitAmount: 650}, nil).Once()

	service := f.NewForecastService(mockWriter)

	first, err := service.Submit(ctx, 1, period, 1000, 600, 750)
	assert.NoError(t, err)
	assert.Equal(t, float64(600), first.CommitAmount)

	// same (user, period), new commit: overwrite, not a second row
	second, err := service.Submit(ctx, 1, period, 1000, 650, 750)
	assert.NoError(t, err)
	assert.Equal(t, float64(650), second.CommitAmount)
	assert.Equal(t, first.PeriodMonth, second.PeriodMonth)
}

func TestForecastService_Submit_NegativeValuesAccepted(t *testing.T) {
	ctx := context.Background()

	mockWriter := mocks.NewForecastWriter(t)

	mockWriter.On("Upsert", ctx, mock.MatchedBy(func(in *models.Forecast) bool {
		return in.Quota == -100 && in.CommitAmount == 0 && in.BestCase == 0
	})).Return(&models.Forecast{UserID: 2, Quota: -100}, nil).Once()

	service := f.NewForecastService(mockWriter)
	_, err := service.Submit(ctx, 2, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), -100, 0, 0)

	assert.NoError(t, err)
}

func TestForecastService_Submit_RepoError(t *testing.T) {
	ctx := context.Background()

	mockWriter := mocks.NewForecastWriter(t)

	dbErr := errors.New("write failed")
	mockWriter.On("Upsert", ctx, mock.Anything).Return(nil, dbErr).Once()

	service := f.NewForecastService(mockWriter)
	resp, err := service.Submit(ctx, 1, time.Now(), 1, 2, 3)

	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, dbErr))
}
