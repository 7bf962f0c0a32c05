package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Alubalulu/sales-forecast-app/internal/http/session"
	"github.com/Alubalulu/sales-forecast-app/internal/models"
	"github.com/stretchr/testify/assert"
)

func requestWithCookies(t *testing.T, w *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSession_IssueAndResolve(t *testing.T) {
	m := session.NewManager("test_secret", time.Hour, "test_session")

	w := httptest.NewRecorder()
	err := m.Issue(w, &models.User{ID: 7, Email: "alice@corp.example"})
	assert.NoError(t, err)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "test_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	userID, err := m.UserID(requestWithCookies(t, w))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestSession_NoCookie(t *testing.T) {
	m := session.NewManager("test_secret", time.Hour, "test_session")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := m.UserID(req)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestSession_ExpiredToken(t *testing.T) {
	m := session.NewManager("test_secret", -time.Minute, "test_session")

	w := httptest.NewRecorder()
	err := m.Issue(w, &models.User{ID: 7})
	assert.NoError(t, err)

	_, err = m.UserID(requestWithCookies(t, w))
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestSession_WrongSecret(t *testing.T) {
	issuer := session.NewManager("secret_a", time.Hour, "test_session")
	verifier := session.NewManager("secret_b", time.Hour, "test_session")

	w := httptest.NewRecorder()
	assert.NoError(t, issuer.Issue(w, &models.User{ID: 7}))

	_, err := verifier.UserID(requestWithCookies(t, w))
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestSession_ClearExpiresCookie(t *testing.T) {
	m := session.NewManager("test_secret", time.Hour, "test_session")

	w := httptest.NewRecorder()
	m.Clear(w)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "test_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
