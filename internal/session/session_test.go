package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	m := NewManager("test-secret", "fc_session")

	rec := httptest.NewRecorder()
	sid, err := m.Issue(rec)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "fc_session", cookie.Name)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	assert.Equal(t, sid, m.SessionID(req))
}

func TestSessionIDRejectsBadCookies(t *testing.T) {
	m := NewManager("test-secret", "fc_session")

	t.Run("absent cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.Empty(t, m.SessionID(req))
	})

	t.Run("garbage value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "fc_session", Value: "not-a-token"})
		assert.Empty(t, m.SessionID(req))
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		other := NewManager("other-secret", "fc_session")
		rec := httptest.NewRecorder()
		_, err := other.Issue(rec)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(rec.Result().Cookies()[0])
		assert.Empty(t, m.SessionID(req))
	})
}

func TestIssueMintsDistinctIDs(t *testing.T) {
	m := NewManager("test-secret", "fc_session")

	a, err := m.Issue(httptest.NewRecorder())
	require.NoError(t, err)
	b, err := m.Issue(httptest.NewRecorder())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
