package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateToken(t *testing.T) {
	secret := []byte("secret")

	token, err := CreateToken(secret, "user-id", time.Minute)
	require.NoError(t, err)

	userID, err := parseToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, "user-id", userID)
}

func TestCreateToken_Expired(t *testing.T) {
	secret := []byte("secret")

	token, err := CreateToken(secret, "user-id", -time.Minute)
	require.NoError(t, err)

	_, err = parseToken(secret, token)
	assert.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := CreateToken([]byte("secret"), "user-id", time.Minute)
	require.NoError(t, err)

	_, err = parseToken([]byte("other"), token)
	assert.Error(t, err)
}

func TestAuth(t *testing.T) {
	secret := []byte("secret")

	h := Auth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "user-id", GetUserID(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	}))

	token, err := CreateToken(secret, "user-id", time.Minute)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAuth_Unauthorized(t *testing.T) {
	h := Auth([]byte("secret"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	tt := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "not bearer", header: "Basic dXNlcjpwYXNz"},
		{name: "garbage token", header: "Bearer garbage"},
	}

	for i := range tt {
		tc := tt[i]
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"unauthorized","code":"UNAUTHORIZED"}`, w.Body.String())
		})
	}
}

func TestCached(t *testing.T) {
	var calls int32

	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Write([]byte("response")) // nolint:errcheck
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "response", w.Body.String())
	}

	assert.EqualValues(t, 1, calls)
}

func TestCached_SkipsErrors(t *testing.T) {
	var calls int32

	h := Cached(time.Minute, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	}

	assert.EqualValues(t, 2, calls)
}
