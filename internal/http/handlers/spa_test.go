package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Alubalulu/sales-forecast-app/internal/http/handlers"
	"github.com/stretchr/testify/assert"
)

func TestSPA_ServesExistingFile(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>shell</html>"), 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0o644))

	h := handlers.SPA(dir)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log(1)", w.Body.String())
}

func TestSPA_FallsBackToIndex(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>shell</html>"), 0o644))

	h := handlers.SPA(dir)

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/some/client/route", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>shell</html>", w.Body.String())
}
