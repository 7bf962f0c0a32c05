package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("no valid session")

type Claims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// Manager issues and validates the signed session cookie. Sessions carry only
// the user id; the user row is resolved from storage on every request.
type Manager struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
}

func NewManager(secret string, ttl time.Duration, cookieName string) *Manager {
	return &Manager{
		secret:     []byte(secret),
		ttl:        ttl,
		cookieName: cookieName,
	}
}

// Issue binds a fixed-TTL session to user and sets it on the response.
func (m *Manager) Issue(w http.ResponseWriter, user *models.User) error {
	now := time.Now().UTC()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// UserID extracts the authenticated user id from the request cookie.
// Missing, malformed and expired cookies all come back as ErrNoSession.
func (m *Manager) UserID(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return 0, ErrNoSession
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, ErrNoSession
	}

	return claims.UserID, nil
}

// Clear expires the session cookie. Safe to call without a session.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
