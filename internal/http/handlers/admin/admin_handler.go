package admin

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Alubalulu/sales-forecast-app/internal/http/api"
	"github.com/Alubalulu/sales-forecast-app/internal/lib/sl"
	repo "github.com/Alubalulu/sales-forecast-app/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type adminService interface {
	AddToWhitelist(ctx context.Context, email string) error
}

type AdminHandler struct {
	log     *slog.Logger
	service adminService
}

func NewAdminHandler(log *slog.Logger, s adminService) *AdminHandler {
	return &AdminHandler{
		log:     log,
		service: s,
	}
}

type WhitelistAddRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AdminHandler) AddWhitelist(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.AddWhitelist"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input WhitelistAddRequest

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

	if err := h.service.AddToWhitelist(ctx, input.Email); err != nil {
		if errors.Is(err, repo.ErrEmailExists) {
			log.Info("email already whitelisted")

			render.Status(r, http.StatusConflict)
			render.JSON(w, r, api.Error(api.ErrCodeEmailExists, err.Error()))
			return
		}
		log.Error("error while adding to whitelist", sl.Err(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	log.Info("email whitelisted", slog.String("email", input.Email))
	render.JSON(w, r, api.Success())
}
