package forecast

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/http/api"
	mw "github.com/Alubalulu/sales-forecast-app/internal/http/middleware"
	"github.com/Alubalulu/sales-forecast-app/internal/lib/sl"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type forecastService interface {
	Submit(ctx context.Context, userID int64, period time.Time, quota, commit, bestCase float64) (*models.Forecast, error)
}

type ForecastHandler struct {
	log     *slog.Logger
	service forecastService
}

func NewForecastHandler(log *slog.Logger, s forecastService) *ForecastHandler {
	return &ForecastHandler{
		log:     log,
		service: s,
	}
}

// Amounts are pointers so that explicit zeroes survive the required check;
// zero and negative values are accepted as-is.
type SubmitRequest struct {
	Period   string   `json:"period" validate:"required"`
	Quota    *float64 `json:"quota" validate:"required"`
	Commit   *float64 `json:"commit" validate:"required"`
	BestCase *float64 `json:"best_case" validate:"required"`
}

func (h *ForecastHandler) Submit(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.forecast.Submit"
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

	var input SubmitRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	period, err := ParsePeriod(input.Period)
	if err != nil {
		log.Error("invalid period", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "period must be YYYY-MM-DD or YYYY-MM"))
		return
	}

	if _, err := h.service.Submit(ctx, user.ID, period, *input.Quota, *input.Commit, *input.BestCase); err != nil {
		log.Error("error while saving forecast", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("forecast saved", slog.Int64("user_id", user.ID), slog.String("period", period.Format("2006-01-02")))
	render.JSON(w, r, api.Success())
}

// ParsePeriod accepts a full date or a bare month.
func ParsePeriod(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01", s)
}
