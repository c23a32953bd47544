// Package session identifies browsers across requests with a signed
// cookie. The cookie payload is a JWT carrying an opaque session id; the
// server keeps no session table for the cookie itself.
package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the cookie payload.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies.
type Manager struct {
	secret        []byte
	cookieName    string
	signingMethod jwt.SigningMethod
}

// NewManager creates a session manager signing with HS256.
func NewManager(secret, cookieName string) *Manager {
	return &Manager{
		secret:        []byte(secret),
		cookieName:    cookieName,
		signingMethod: jwt.SigningMethodHS256,
	}
}

// SessionID extracts the session id from the request cookie. It returns
// an empty string when the cookie is absent, expired, or fails signature
// verification.
func (m *Manager) SessionID(r *http.Request) string {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != m.signingMethod {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}
	return claims.SessionID
}

// Issue mints a fresh session id, sets the signed cookie on the response,
// and returns the id. The cookie is scoped to the whole site and hidden
// from script.
func (m *Manager) Issue(w http.ResponseWriter) (string, error) {
	sid := uuid.New().String()
	now := time.Now()

	token := jwt.NewWithClaims(m.signingMethod, &Claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sid, nil
}
