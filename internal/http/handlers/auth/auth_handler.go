package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Alubalulu/sales-forecast-app/internal/http/api"
	mw "github.com/Alubalulu/sales-forecast-app/internal/http/middleware"
	"github.com/Alubalulu/sales-forecast-app/internal/http/session"
	"github.com/Alubalulu/sales-forecast-app/internal/lib/sl"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	"github.com/Alubalulu/sales-forecast-app/internal/oauth"
	repo "github.com/Alubalulu/sales-forecast-app/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

const stateCookie = "oauth_state"

type oauthProvider interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*oauth.Profile, error)
}

type authService interface {
	SignIn(ctx context.Context, googleID, email, displayName string) (*models.User, error)
}

type AuthHandler struct {
	log      *slog.Logger
	provider oauthProvider
	service  authService
	sessions *session.Manager
}

func NewAuthHandler(log *slog.Logger, provider oauthProvider, s authService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		log:      log,
		provider: provider,
		service:  s,
		sessions: sessions,
	}
}

// Login sends the browser to the provider's consent screen with a one-shot
// state cookie against CSRF on the callback.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := newState()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusFound)
}

// Callback finishes the code flow. Every failure path, non-whitelisted emails
// included, redirects to the root with no session and no error detail.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Callback"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		log.Info("state mismatch on oauth callback")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		log.Info("oauth callback without code")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	profile, err := h.provider.FetchProfile(ctx, code)
	if err != nil {
		log.Error("failed to fetch oauth profile", sl.Err(err))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	user, err := h.service.SignIn(ctx, profile.GoogleID, profile.Email, profile.DisplayName)
	if err != nil {
		if errors.Is(err, repo.ErrNotWhitelisted) {
			log.Info("sign-in rejected, email not whitelisted")
		} else {
			log.Error("sign-in failed", sl.Err(err))
		}
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	if err := h.sessions.Issue(w, user); err != nil {
		log.Error("failed to issue session", sl.Err(err))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	log.Info("user signed in", slog.Int64("user_id", user.ID))
	http.Redirect(w, r, "/", http.StatusFound)
}

// CurrentUser returns the session user, or an empty 200 for anonymous
// callers; the SPA probes this on load.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := mw.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	render.JSON(w, r, api.UserSchema{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        string(user.Role),
	})
}

// Logout clears the session cookie and redirects. Idempotent: succeeds with
// or without an existing session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func newState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
