package httpadapter

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// probe records the caller the middleware put in the request context.
func probe(caller *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*caller = CallerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestHeaderAuth(t *testing.T) {
	var caller string
	h := HeaderAuth("X-Caller")(probe(&caller))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Caller", "bob")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", caller)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Caller", "   ")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func signToken(t *testing.T, key []byte, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestJWTAuth(t *testing.T) {
	key := []byte("test-signing-key")
	var caller string
	h := JWTAuth(key)(probe(&caller))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, "bob"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bob", caller)
}

func TestJWTAuthRejections(t *testing.T) {
	key := []byte("test-signing-key")
	var caller string
	h := JWTAuth(key)(probe(&caller))

	cases := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"garbage token", "not-a-token"},
		{"wrong key", signToken(t, []byte("other-key"), "bob")},
		{"empty subject", signToken(t, key, "")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthorized", errorCode(t, rec))
		})
	}
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	key := []byte("test-signing-key")
	var caller string
	h := JWTAuth(key)(probe(&caller))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "bob",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
