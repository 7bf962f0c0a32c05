package rollup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/http/api"
	"github.com/Alubalulu/sales-forecast-app/internal/http/handlers/forecast"
	mw "github.com/Alubalulu/sales-forecast-app/internal/http/middleware"
	"github.com/Alubalulu/sales-forecast-app/internal/lib/sl"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type rollupService interface {
	GetRollup(ctx context.Context, managerID int64, period *time.Time) ([]api.RollupRow, error)
	ExportCSV(ctx context.Context, managerID int64, period *time.Time) ([]byte, error)
}

type RollupHandler struct {
	log     *slog.Logger
	service rollupService
}

func NewRollupHandler(log *slog.Logger, s rollupService) *RollupHandler {
	return &RollupHandler{
		log:     log,
		service: s,
	}
}

func (h *RollupHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rollup.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	user, ok := mw.UserFromContext(ctx)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "authentication required"))
		return
	}

	period, err := periodFilter(r)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "period must be YYYY-MM-DD or YYYY-MM"))
		return
	}

	rows, err := h.service.GetRollup(ctx, user.ID, period)
	if err != nil {
		log.Error("error while retrieving rollup", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("rollup retrieved", slog.Int("rows", len(rows)))
	render.JSON(w, r, rows)
}

func (h *RollupHandler) Export(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rollup.Export"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	user, ok := mw.UserFromContext(ctx)
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, api.Error(api.ErrCodeUnauthorized, "authentication required"))
		return
	}

	period, err := periodFilter(r)
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "period must be YYYY-MM-DD or YYYY-MM"))
		return
	}

	data, err := h.service.ExportCSV(ctx, user.ID, period)
	if err != nil {
		log.Error("error while exporting rollup", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("rollup exported", slog.Int("bytes", len(data)))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="forecast.csv"`)
	w.Write(data)
}

// periodFilter reads the optional ?period= narrowing; nil means all periods.
func periodFilter(r *http.Request) (*time.Time, error) {
	raw := r.URL.Query().Get("period")
	if raw == "" {
		return nil, nil
	}

	t, err := forecast.ParsePeriod(raw)
	if err != nil {
		return nil, err
	}

	normalized := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return &normalized, nil
}
