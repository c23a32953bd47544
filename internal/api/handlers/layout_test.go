package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowcanvas/internal/layout"
	"flowcanvas/internal/session"
	"flowcanvas/pkg/logger"
)

func newLayoutRouter(t *testing.T) *chi.Mux {
	t.Helper()
	h := NewLayoutHandler(layout.NewMemoryStore(), session.NewManager("test-secret", "fc_session"), logger.Discard())

	r := chi.NewRouter()
	r.Post("/api/layout/save", h.SaveLayout)
	r.Get("/api/layout/load", h.LoadLayout)
	return r
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "fc_session" {
			return c
		}
	}
	return nil
}

func TestSaveLayout(t *testing.T) {
	t.Run("first save mints a session cookie", func(t *testing.T) {
		r := newLayoutRouter(t)

		rec := doJSON(t, r, http.MethodPost, "/api/layout/save", `{"panel_state": {"left": "open"}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "Layout saved successfully", body["message"])
		assert.NotNil(t, sessionCookie(t, rec))
	})

	t.Run("subsequent saves reuse the session", func(t *testing.T) {
		r := newLayoutRouter(t)

		rec := doJSON(t, r, http.MethodPost, "/api/layout/save", `{"panel_state": {"left": "open"}}`)
		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)

		req := httptest.NewRequest(http.MethodPost, "/api/layout/save", strings.NewReader(`{"canvas_state": {"zoom": 1.5}}`))
		req.AddCookie(cookie)
		rec2 := httptest.NewRecorder()
		r.ServeHTTP(rec2, req)

		require.Equal(t, http.StatusOK, rec2.Code)
		assert.Nil(t, sessionCookie(t, rec2))

		req = httptest.NewRequest(http.MethodGet, "/api/layout/load", nil)
		req.AddCookie(cookie)
		rec3 := httptest.NewRecorder()
		r.ServeHTTP(rec3, req)

		data := decodeBody(t, rec3)["data"].(map[string]interface{})
		assert.Equal(t, map[string]interface{}{"left": "open"}, data["panel_state"])
		assert.Equal(t, map[string]interface{}{"zoom": 1.5}, data["canvas_state"])
	})

	t.Run("malformed body is a server error", func(t *testing.T) {
		r := newLayoutRouter(t)

		rec := doJSON(t, r, http.MethodPost, "/api/layout/save", `{broken`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLoadLayout(t *testing.T) {
	t.Run("no session means empty data and no cookie", func(t *testing.T) {
		r := newLayoutRouter(t)

		rec := doJSON(t, r, http.MethodGet, "/api/layout/load", "")

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "success", body["status"])
		assert.Empty(t, body["data"])
		assert.Nil(t, sessionCookie(t, rec))
	})

	t.Run("unknown session cookie loads empty data", func(t *testing.T) {
		r := newLayoutRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/api/layout/load", nil)
		req.AddCookie(&http.Cookie{Name: "fc_session", Value: "forged"})
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeBody(t, rec)["data"])
	})
}
