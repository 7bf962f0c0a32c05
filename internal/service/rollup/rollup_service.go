package rollup

import (
	"context"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/http/api"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	"github.com/gocarina/gocsv"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=RollupProvider
type RollupProvider interface {
	GetRollup(ctx context.Context, managerID int64, period *time.Time) ([]*models.RollupRow, error)
}

type RollupService struct {
	forecasts RollupProvider
}

func NewRollupService(forecasts RollupProvider) *RollupService {
	return &RollupService{
		forecasts: forecasts,
	}
}

// exportRow fixes the CSV column order of the attachment.
type exportRow struct {
	DisplayName  string   `csv:"display_name"`
	Quota        *float64 `csv:"quota"`
	CommitAmount *float64 `csv:"commit_amount"`
	BestCase     *float64 `csv:"best_case"`
}

// GetRollup returns the manager's direct reports ordered by descending commit
// amount, reports without a submission last with null numbers. The view is
// per period row: a report with submissions for several months contributes
// one row per month unless period narrows it.
func (s *RollupService) GetRollup(ctx context.Context, managerID int64, period *time.Time) ([]api.RollupRow, error) {
	rows, err := s.forecasts.GetRollup(ctx, managerID, period)
	if err != nil {
		return nil, err
	}

	resp := make([]api.RollupRow, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, api.RollupRow{
			DisplayName:  row.DisplayName,
			Quota:        row.Quota,
			CommitAmount: row.CommitAmount,
			BestCase:     row.BestCase,
		})
	}

	return resp, nil
}

// ExportCSV serializes the same rollup rows as CSV, empty cells standing in
// for missing submissions.
func (s *RollupService) ExportCSV(ctx context.Context, managerID int64, period *time.Time) ([]byte, error) {
	rows, err := s.forecasts.GetRollup(ctx, managerID, period)
	if err != nil {
		return nil, err
	}

	records := make([]exportRow, 0, len(rows))
	for _, row := range rows {
		records = append(records, exportRow{
			DisplayName:  row.DisplayName,
			Quota:        row.Quota,
			CommitAmount: row.CommitAmount,
			BestCase:     row.BestCase,
		})
	}

	return gocsv.MarshalBytes(&records)
}
