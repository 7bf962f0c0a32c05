package api

import "time"

type UserSchema struct {
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

type ForecastSchema struct {
	PeriodMonth  string     `json:"period"`
	Quota        float64    `json:"quota"`
	CommitAmount float64    `json:"commit_amount"`
	BestCase     float64    `json:"best_case"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// RollupRow mirrors one row of the manager rollup. Numeric fields are null
// for reports that have not submitted a forecast.
type RollupRow struct {
	DisplayName  string   `json:"display_name"`
	Quota        *float64 `json:"quota"`
	CommitAmount *float64 `json:"commit_amount"`
	BestCase     *float64 `json:"best_case"`
}
