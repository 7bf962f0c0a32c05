package models

import "time"

// Forecast is one user's numbers for a single calendar month.
// PeriodMonth is always the first day of that month.
type Forecast struct {
	UserID       int64      `db:"user_id"`
	PeriodMonth  time.Time  `db:"period_month"`
	Quota        float64    `db:"quota"`
	CommitAmount float64    `db:"commit_amount"`
	BestCase     float64    `db:"best_case"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// RollupRow is one direct report's forecast as seen by their manager.
// The numeric fields are nil for reports that have not submitted yet
// (left join semantics).
type RollupRow struct {
	DisplayName  string     `db:"display_name"`
	PeriodMonth  *time.Time `db:"period_month"`
	Quota        *float64   `db:"quota"`
	CommitAmount *float64   `db:"commit_amount"`
	BestCase     *float64   `db:"best_case"`
}
