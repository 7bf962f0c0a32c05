package rollup_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/http/api"
	"github.com/Alubalulu/sales-forecast-app/internal/http/handlers"
	"github.com/Alubalulu/sales-forecast-app/internal/http/handlers/mocks"
	"github.com/Alubalulu/sales-forecast-app/internal/http/handlers/rollup"
	mw "github.com/Alubalulu/sales-forecast-app/internal/http/middleware"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func f64(v float64) *float64 { return &v }

func managerRequest(target string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return req.WithContext(mw.WithUser(req.Context(), &models.User{ID: 10, Role: models.RoleManager}))
}

func TestRollupHandler_Get_Success(t *testing.T) {
	mockService := mocks.NewMockRollupService(t)
	h := rollup.NewRollupHandler(handlers.NewLogger(), mockService)

	rows := []api.RollupRow{
		{DisplayName: "A", Quota: f64(100), CommitAmount: f64(80), BestCase: f64(90)},
		{DisplayName: "B"},
	}
	mockService.On("GetRollup", mock.Anything, int64(10), (*time.Time)(nil)).Return(rows, nil).Once()

	w := httptest.NewRecorder()
	h.Get(w, managerRequest("/api/rollup"))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []api.RollupRow
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "A", resp[0].DisplayName)
	assert.Equal(t, float64(80), *resp[0].CommitAmount)
	assert.Nil(t, resp[1].CommitAmount)
}

func TestRollupHandler_Get_NullFieldsSerializedAsNull(t *testing.T) {
	mockService := mocks.NewMockRollupService(t)
	h := rollup.NewRollupHandler(handlers.NewLogger(), mockService)

	mockService.On("GetRollup", mock.Anything, int64(10), (*time.Time)(nil)).
		Return([]api.RollupRow{{DisplayName: "B"}}, nil).Once()

	w := httptest.NewRecorder()
	h.Get(w, managerRequest("/api/rollup"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`[{"display_name":"B","quota":null,"commit_amount":null,"best_case":null}]`,
		w.Body.String(),
	)
}

func TestRollupHandler_Get_PeriodFilter(t *testing.T) {
	mockService := mocks.NewMockRollupService(t)
	h := rollup.NewRollupHandler(handlers.NewLogger(), mockService)

	period := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("GetRollup", mock.Anything, int64(10), &period).
		Return([]api.RollupRow{}, nil).Once()

	w := httptest.NewRecorder()
	h.Get(w, managerRequest("/api/rollup?period=2024-03"))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRollupHandler_Get_BadPeriod(t *testing.T) {
	mockService := mocks.NewMockRollupService(t)
	h := rollup.NewRollupHandler(handlers.NewLogger(), mockService)

	w := httptest.NewRecorder()
	h.Get(w, managerRequest("/api/rollup?period=bogus"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
}

func TestRollupHandler_Get_NoUser(t *testing.T) {
	mockService := mocks.NewMockRollupService(t)
	h := rollup.NewRollupHandler(handlers.NewLogger(), mockService)

	w := httptest.NewRecorder()
	h.Get(w, httptest.NewRequest(http.MethodGet, "/api/rollup", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRollupHandler_Get_InternalError(t *testing.T) {
	mockService := mocks.NewMockRollupService(t)
	h := rollup.NewRollupHandler(handlers.NewLogger(), mockService)

	mockService.On("GetRollup", mock.Anything, int64(10), (*time.Time)(nil)).
		Return(nil, errors.New("db error")).Once()

	w := httptest.NewRecorder()
	h.Get(w, managerRequest("/api/rollup"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := handlers.DecodeErrorResponse(t, w.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

func TestRollupHandler_Export_Success(t *testing.T) {
	mockService := mocks.NewMockRollupService(t)
	h := rollup.NewRollupHandler(handlers.NewLogger(), mockService)

	csv := "display_name,quota,commit_amount,best_case\nA,100,80,90\n"
	mockService.On("ExportCSV", mock.Anything, int64(10), (*time.Time)(nil)).
		Return([]byte(csv), nil).Once()

	w := httptest.NewRecorder()
	h.Export(w, managerRequest("/api/export"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="forecast.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, csv, w.Body.String())
}

func TestRollupHandler_Export_InternalError(t *testing.T) {
	mockService := mocks.NewMockRollupService(t)
	h := rollup.NewRollupHandler(handlers.NewLogger(), mockService)

	mockService.On("ExportCSV", mock.Anything, int64(10), (*time.Time)(nil)).
		Return(nil, errors.New("db error")).Once()

	w := httptest.NewRecorder()
	h.Export(w, managerRequest("/api/export"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
